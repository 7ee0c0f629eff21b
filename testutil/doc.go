// Package testutil provides seeded randomness and synthetic point sets
// for tests.
package testutil
