package echo

// NameInput binds the path segment of the personalized greeting endpoint.
// The value is echoed back verbatim, so no length or character constraints
// are declared.
type NameInput struct {
	Name string `path:"name" doc:"Name to greet" example:"World"`
}
