package restclient_test

import (
	"context"
	"fmt"

	"github.com/restbase/restbase/restclient"
)

// stubTransport returns a canned response without touching the network.
type stubTransport struct {
	status int
	body   string
}

func (s stubTransport) Send(_ context.Context, _ *restclient.Request) (*restclient.Response, error) {
	return &restclient.Response{StatusCode: s.status, Body: []byte(s.body)}, nil
}

func Example() {
	client, err := restclient.New(restclient.Config{
		BaseURL: "https://api.example.com",
	},
		restclient.WithTransport(stubTransport{status: 200, body: `{"name":"Ada"}`}),
		restclient.WithMiddleware(restclient.BearerAuth("token")),
	)
	if err != nil {
		panic(err)
	}

	out, err := client.Get(context.Background(), "/users/1")
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Payload())
	// Output: map[name:Ada]
}

// A downstream API client embeds the base Caller and adds endpoint
// methods on top of it.
type orgClient struct {
	restclient.Caller
}

func (c *orgClient) Org(ctx context.Context, id string) (*restclient.Outcome, error) {
	return c.Get(ctx, "/orgs/"+id)
}

func Example_embedding() {
	base, err := restclient.New(restclient.Config{
		BaseURL: "https://api.example.com",
	},
		restclient.WithTransport(stubTransport{status: 404}),
	)
	if err != nil {
		panic(err)
	}

	orgs := &orgClient{Caller: base}
	out, err := orgs.Org(context.Background(), "acme")
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Missing())
	// Output: true
}
