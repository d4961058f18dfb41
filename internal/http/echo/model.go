package echo

// Data models the greeting payload returned by all echo endpoints.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, World!"`
}
