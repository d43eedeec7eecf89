package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mahjong "mahjong-go"
)

// Response is the envelope of every API reply. Failures are also sent with
// HTTP 200; Code carries the engine error code.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes data with code 0.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    mahjong.CodeOK,
		Message: "success",
		Data:    data,
	})
}

// ErrorWithMsg writes a failure with a custom message.
func ErrorWithMsg(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// ErrorFromScoreError writes the code and full text of an engine error.
func ErrorFromScoreError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, Response{
		Code:    mahjong.GetCode(err),
		Message: err.Error(),
		Data:    nil,
	})
}
