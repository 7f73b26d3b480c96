//go:build !darwin || !cgo

package keyboard

// CurrentLayoutRaw is unavailable without Carbon.
func CurrentLayoutRaw() string { return "" }
