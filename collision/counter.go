package collision

// Counter issues fragment identifiers. Identifiers increase
// monotonically and are never reused within a run. The counter is
// owned by a single Resolver; resolving collisions concurrently from
// multiple goroutines is not supported.
type Counter struct {
	n uint32
}

// Next returns the next fragment identifier.
func (c *Counter) Next() uint32 {
	c.n++
	return c.n
}

// Seed sets the counter so that the next identifier is n+1. It must
// be called when restarting from a checkpoint so that new fragments
// do not collide with identifiers issued before the restart.
func (c *Counter) Seed(n uint32) {
	c.n = n
}

// Issued returns the number of identifiers issued so far (or the last
// seed plus the number issued since).
func (c *Counter) Issued() uint32 {
	return c.n
}
