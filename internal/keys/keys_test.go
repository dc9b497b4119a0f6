package keys

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if kp.KeyID == "" {
		t.Error("KeyID is empty")
	}
	if kp.PublicSet.Len() != 1 {
		t.Errorf("public set has %d keys, want 1", kp.PublicSet.Len())
	}
}

func TestPublicSetHasNoPrivateMaterial(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	publicJSON, err := json.Marshal(kp.PublicSet)
	if err != nil {
		t.Fatalf("failed to marshal public set: %v", err)
	}
	if strings.Contains(string(publicJSON), `"d"`) {
		t.Errorf("public JWK set contains private material: %s", publicJSON)
	}

	privateJSON, err := json.Marshal(kp.PrivateJWK)
	if err != nil {
		t.Fatalf("failed to marshal private JWK: %v", err)
	}
	if !strings.Contains(string(privateJSON), `"d"`) {
		t.Error("private JWK is missing the private key parameter")
	}
}

func TestGenerateProducesDistinctKeys(t *testing.T) {
	a, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatal(err)
	}

	if a.KeyID == b.KeyID {
		t.Error("two generated key pairs share a key ID")
	}
}
