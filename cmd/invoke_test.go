package cmd

import (
	"github.com/spf13/cobra"
	"testing"
)

func TestTripRequestLeavesUnsetFlagsNil(t *testing.T) {
	c := &cobra.Command{Use: "invoke"}
	c.Flags().StringVar(&invokeFrom, "from", "", "")
	c.Flags().StringVar(&invokeTo, "to", "", "")
	c.Flags().StringVar(&invokeEmail, "email", "", "")
	if err := c.Flags().Parse([]string{"--from", "A", "--email", ""}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	req := tripRequest(c)
	if req.From == nil || *req.From != "A" {
		t.Errorf("expected from A, got %v", req.From)
	}
	if req.To != nil {
		t.Errorf("expected nil to, got %q", *req.To)
	}
	if req.Email == nil || *req.Email != "" {
		t.Errorf("expected explicit empty email, got %v", req.Email)
	}
}
