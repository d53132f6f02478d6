package xrpc

import (
	"net/http"

	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

// Factory builds a bound client/gateway pair per service endpoint. All pairs
// share the one HTTP client.
type Factory struct {
	httpClient *http.Client
	clock      ports.Clock
}

var _ ports.AgentFactory = (*Factory)(nil)

func NewFactory(httpClient *http.Client, clock ports.Clock) *Factory {
	return &Factory{httpClient: httpClient, clock: clock}
}

func (f *Factory) NewAgent(service string) (ports.APIClient, ports.SessionGateway) {
	client := NewClient(service, f.httpClient)
	return client, NewGateway(client, f.clock)
}
