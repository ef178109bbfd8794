package common

// Virtual key codes delivered by the window package.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeyO     = 79 // O key (ASCII), toggles orthographic projection
	KeyR     = 82 // R key (ASCII), resets the orbit controller
	KeyMinus = 45 // - key (ASCII)
	KeyEqual = 61 // = / + key (ASCII)
)

// Arrow keys (GLFW).
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)
