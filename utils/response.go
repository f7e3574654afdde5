package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Stable error codes surfaced to clients. Internal errors never leak
// implementation detail past these.
const (
	CodeInvalidParams      = 1001
	CodeUserExists         = 2001
	CodeInvalidCredentials = 2002
	CodeTeamCodeTaken      = 3001
	CodeTeamNotFound       = 3004
	CodeInvalidPortal      = 3010
	CodeMissingPortal      = 3011
	CodeUnauthorized       = 4001
	CodeForbidden          = 4003
	CodeNotFound           = 4004
	CodeStoreError         = 5000
	CodeTokenError         = 5002
	CodeGenerationFailed   = 5003
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
