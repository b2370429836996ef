package languages

// Language describes a translation target supported by the pipeline.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}
