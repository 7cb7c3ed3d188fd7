package exception

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `App\Errors\NotFoundInterface`, want: "error/not-found"},
		{in: "Simple", want: "error/simple"},
		{in: "pkgerror.NotFound", want: "error/not-found"},
		{in: "pkgerror.ServiceUnavailable", want: "error/service-unavailable"},
		{in: "pkgerror.HTTPVersionNotSupported", want: "error/http-version-not-supported"},
		{in: "app/errors/BadGatewayInterface", want: "error/bad-gateway"},
		{in: "Error404Page", want: "error/error404-page"},
		{in: "", want: "error/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateName(tt.in))
		})
	}
}

func TestTemplateNameStripsInterfaceOnlyAsSuffix(t *testing.T) {
	// "Interface" in the middle of the name is kept as a word.
	assert.Equal(t, "error/interface-mismatch", TemplateName(`App\InterfaceMismatch`))
	assert.Equal(t, "error/user-interface-broken", TemplateName("UserInterfaceBroken"))
}
