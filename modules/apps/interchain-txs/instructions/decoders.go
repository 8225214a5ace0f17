package instructions

// DefaultRouter returns a sealed Router with the decoders of every instruction
// built by this package. Each decoder is registered under both the response
// type url of msg_responses acknowledgements and the request type url of
// legacy data acknowledgements.
func DefaultRouter() *Router {
	rtr := NewRouter().
		AddRoute(MsgDelegateTypeURL, DecodeDelegateResponse).
		AddRoute(MsgDelegateResponseTypeURL, DecodeDelegateResponse).
		AddRoute(MsgUndelegateTypeURL, DecodeUndelegateResponse).
		AddRoute(MsgUndelegateResponseTypeURL, DecodeUndelegateResponse).
		AddRoute(MsgSwapExactAmountInTypeURL, DecodeSwapResponse).
		AddRoute(MsgSwapExactAmountInResponseTypeURL, DecodeSwapResponse)

	rtr.Seal()
	return rtr
}
