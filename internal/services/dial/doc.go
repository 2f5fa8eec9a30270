// Package dial reports where raw angles and numeric overrides land on the
// 26-position dial grid.
package dial
