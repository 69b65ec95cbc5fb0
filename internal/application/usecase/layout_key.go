package usecase

// LayoutKey is the store key of a canvas layout.
func LayoutKey(prefix, canvasID string) string {
	return prefix + canvasID
}
