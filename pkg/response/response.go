package response

import "github.com/gin-gonic/gin"

// Resource wraps a single record the way the transaction endpoints report
// success: {"success": true, "data": ...}.
type Resource struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Collection wraps a list with its count: {"success": true, "count": n, "data": [...]}.
type Collection struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// ErrorEnvelope is the uniform client-facing error shape. Status is "fail"
// for operational (4xx) failures and "error" for internal ones. Stack is
// populated only outside production.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Data writes a {"success":true,"data":...} payload.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, Resource{Success: true, Data: data})
}

// List writes a {"success":true,"count":n,"data":[...]} payload.
func List(c *gin.Context, status int, count int, data any) {
	c.JSON(status, Collection{Success: true, Count: count, Data: data})
}
