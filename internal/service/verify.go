package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
)

// OrderClaim is unverified order data plus the signature the form system
// computed over it. It lives for the duration of one verification call.
type OrderClaim struct {
	Total     string
	Produit   string
	Email     string
	EntryID   string
	Origin    string
	Signature string
}

// OrderVerifier attests that an order claim was signed by the form
// system. Verification is pure: no state, no replay tracking, a replayed
// valid claim verifies again.
type OrderVerifier interface {
	Verify(claim *OrderClaim) (*OrderClaim, error)
}

type orderVerifierImpl struct {
	secret []byte
}

func NewOrderVerifier(secret string) OrderVerifier {
	return &orderVerifierImpl{
		secret: []byte(secret),
	}
}

// Verify recomputes the expected signature from the claim's fields and
// the shared secret, and compares it with the claimed one. On success the
// claim is returned unchanged.
func (v *orderVerifierImpl) Verify(claim *OrderClaim) (*OrderClaim, error) {
	if claim.Total == "" || claim.Produit == "" || claim.Email == "" ||
		claim.EntryID == "" || claim.Origin == "" || claim.Signature == "" {
		return nil, ErrIncompleteClaim
	}

	// Same concatenation the form system signs: fixed order, no
	// delimiter. Field serialization must match the signer byte for byte.
	payload := claim.Total + claim.Produit + claim.Email + claim.EntryID + claim.Origin

	mac := hmac.New(sha256.New, v.secret)
	if _, err := mac.Write([]byte(payload)); err != nil {
		return nil, fmt.Errorf("compute order hmac: %w", err)
	}
	expected := hex.EncodeToString(mac.Sum(nil))

	// Length first: malformed input fails fast without entering the byte
	// comparison.
	if len(claim.Signature) != len(expected) {
		log.Printf("order verify: signature length mismatch for entry_id=%s", claim.EntryID)
		return nil, ErrSignatureLength
	}

	// hmac.Equal is constant-time, a short-circuiting compare would leak
	// the position of the first differing byte.
	if !hmac.Equal([]byte(claim.Signature), []byte(expected)) {
		log.Printf("order verify: invalid signature for entry_id=%s origin=%s", claim.EntryID, claim.Origin)
		return nil, ErrInvalidSignature
	}

	return claim, nil
}
