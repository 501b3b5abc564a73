package dto

import "encoding/json"

// GraphQLRequest is the POST /graphql body.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLError is the wire error shape: status defaults to 500 unless the
// resolver attached one, data carries validation details.
type GraphQLError struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

type GraphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
