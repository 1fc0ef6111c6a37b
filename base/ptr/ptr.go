// Package ptr builds pointers to literals for optional update fields.
package ptr

func String(value string) *string {
	return &value
}

func Int(value int) *int {
	return &value
}
