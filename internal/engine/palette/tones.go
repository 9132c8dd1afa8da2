package palette

// Named tones used by the default style table and the frame chrome.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	WhiteSmoke  = RGB(245, 245, 245)
	Gray30      = RGB(77, 77, 77)
	Gray50      = RGB(127, 127, 127)
	DarkCyan    = RGB(0, 139, 139)
	DarkBlue    = RGB(0, 0, 139)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	LightSalmon = RGB(255, 160, 122)
	Green       = RGB(0, 255, 0)
	Green4      = RGB(0, 139, 0)
	WebGreen    = RGB(0, 128, 0)
	Brown4      = RGB(139, 35, 35)
)
