package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Ack mirrors the acknowledgment envelope the previous backend's clients
// already parse: inserts carry the new id, rejected admissions carry
// acknowledged=false plus a human-readable message.
type Ack struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Inserted(c *gin.Context, id string) {
	c.JSON(200, Ack{Acknowledged: true, InsertedID: id})
}

func Rejected(c *gin.Context, message string) {
	c.JSON(200, Ack{Acknowledged: false, Message: message})
}
