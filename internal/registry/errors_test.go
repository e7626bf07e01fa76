package registry

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail string", `{"detail":"name already exists"}`, "name already exists"},
		{"message string", `{"message":"Database unavailable"}`, "Database unavailable"},
		{"detail wins over message", `{"detail":"a","message":"b"}`, "a"},
		{"non-string detail falls through to message", `{"detail":[{"msg":"x"}],"message":"fallback"}`, "fallback"},
		{"non-string detail", `{"detail":[{"loc":["body","name"],"msg":"too short"}]}`, GenericMessage},
		{"numeric message", `{"message":42}`, GenericMessage},
		{"blank detail", `{"detail":"   "}`, GenericMessage},
		{"empty body", ``, GenericMessage},
		{"html body", `<html>502 Bad Gateway</html>`, GenericMessage},
		{"json array", `["detail"]`, GenericMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractMessage([]byte(tt.body)))
		})
	}
}

func TestCategoryForStatus(t *testing.T) {
	require.Equal(t, CategoryBadRequest, CategoryForStatus(http.StatusBadRequest))
	require.Equal(t, CategoryNotFound, CategoryForStatus(http.StatusNotFound))
	require.Equal(t, CategoryValidation, CategoryForStatus(http.StatusUnprocessableEntity))
	require.Equal(t, CategoryClient, CategoryForStatus(http.StatusConflict))
	require.Equal(t, CategoryServer, CategoryForStatus(http.StatusInternalServerError))
	require.Equal(t, CategoryServer, CategoryForStatus(http.StatusBadGateway))
}

func TestMessage(t *testing.T) {
	remote := &RemoteError{Category: CategoryBadRequest, StatusCode: 400, Message: "duplicate"}
	require.Equal(t, "duplicate", Message(remote))
	require.Equal(t, "duplicate", Message(fmt.Errorf("create: %w", remote)))
	require.Equal(t, GenericMessage, Message(errors.New("plain")))
	require.Equal(t, GenericMessage, Message(&RemoteError{Category: CategoryServer}))
}

func TestRemoteError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	transport := &RemoteError{Category: CategoryTransport, Message: GenericMessage, Err: cause}
	require.ErrorIs(t, transport, cause)
	require.Contains(t, transport.Error(), "connection refused")

	status := &RemoteError{Category: CategoryNotFound, StatusCode: 404, Message: "Monkey not found"}
	require.Equal(t, "registry not_found (status 404): Monkey not found", status.Error())
	require.True(t, IsNotFound(status))
	require.False(t, IsNotFound(transport))
}
