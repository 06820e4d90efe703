package response

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint returns. Count rides along on
// filter and "today" endpoints, Date (DD-MON-YY upper-case) on "today"
// endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Date    string      `json:"date,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithCount(w http.ResponseWriter, statusCode int, message string, data interface{}, count int) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func SuccessWithDate(w http.ResponseWriter, data interface{}, count int, date string) {
	JSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
		Date:    date,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Duplicate value exists!"
	}
	Error(w, http.StatusConflict, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
