package clamav

// command builds the argument vector for scanning path. Pure: no filesystem
// access, no existence check. The path is always a single discrete argv
// element after a "--" terminator, and no shell is involved anywhere, so its
// content can never be read as extra flags or command separators no matter
// what spaces, quotes, or metacharacters it carries.
func (s *Scanner) command(path string) []string {
	argv := make([]string, 0, len(s.args)+3)
	argv = append(argv, s.exe)
	argv = append(argv, s.args...)
	argv = append(argv, "--", path)
	return argv
}
