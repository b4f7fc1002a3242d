package interfaces

// ISignatureVerifier validates a gateway payment-completion callback.
//
// Verify returns true only when the supplied signature matches the HMAC the
// server computes over the order and payment ids. Implementations must
// compare in constant time.
type ISignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}
