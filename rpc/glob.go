package rpc

// Match reports whether the glob pattern matches s. '?' matches any
// single byte, '*' matches a run of bytes that does not cross '/', and
// '#' matches a run of bytes including '/'. Matching backtracks to the
// most recent wildcard when a literal run fails.
func Match(pattern, s string) bool {
	n1, n2 := len(pattern), len(s)
	i, j, ni, nj := 0, 0, 0, 0
	for i < n1 || j < n2 {
		switch {
		case i < n1 && j < n2 && (pattern[i] == '?' || pattern[i] == s[j]):
			i++
			j++
		case i < n1 && (pattern[i] == '*' || pattern[i] == '#'):
			ni, nj = i, j+1
			i++
		case nj > 0 && nj <= n2 && (pattern[i-1] == '#' || j >= n2 || s[j] != '/'):
			i, j = ni, nj
		default:
			return false
		}
	}
	return true
}
