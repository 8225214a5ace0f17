package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

var _ types.ResponseDecoders = (*Router)(nil)

// The router is a map from message response type url to the ResponseDecoder
// interpreting it.
type Router struct {
	routes map[string]types.ResponseDecoder
	sealed bool
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[string]types.ResponseDecoder),
	}
}

// Seal prevents the Router from any subsequent decoders to be registered.
// Seal will panic if called more than once.
func (rtr *Router) Seal() {
	if rtr.sealed {
		panic(errors.New("router already sealed"))
	}
	rtr.sealed = true
}

// Sealed returns a boolean signifying if the Router is sealed or not.
func (rtr Router) Sealed() bool {
	return rtr.sealed
}

// AddRoute adds the decoder of msgType. It returns the Router so AddRoute
// calls can be linked. It will panic if the Router is sealed.
func (rtr *Router) AddRoute(msgType string, decoder types.ResponseDecoder) *Router {
	if rtr.sealed {
		panic(fmt.Errorf("router sealed; cannot register %s decoder", msgType))
	}
	if !strings.HasPrefix(msgType, "/") {
		panic(fmt.Errorf("message type %s must start with '/'", msgType))
	}
	if decoder == nil {
		panic(fmt.Errorf("no decoder provided for %s", msgType))
	}
	if rtr.HasRoute(msgType) {
		panic(fmt.Errorf("route %s has already been registered", msgType))
	}

	rtr.routes[msgType] = decoder
	return rtr
}

// HasRoute returns true if the Router has a decoder registered for msgType.
func (rtr *Router) HasRoute(msgType string) bool {
	_, ok := rtr.routes[msgType]
	return ok
}

// GetDecoder returns the decoder registered for msgType.
func (rtr *Router) GetDecoder(msgType string) (types.ResponseDecoder, bool) {
	decoder, ok := rtr.routes[msgType]
	return decoder, ok
}
