package usecase

import (
	"errors"
	"strings"
	"testing"

	"os_service_api/internal/domain/entities"
)

func TestValidateTransition(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		if err := ValidateTransition(entities.StatusRecebida, entities.StatusEmDiagnostico); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected budget goes back to diagnosis", func(t *testing.T) {
		if err := ValidateTransition(entities.StatusAguardandoAprovacao, entities.StatusEmDiagnostico); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skipping stages is rejected with the allowed set", func(t *testing.T) {
		err := ValidateTransition(entities.StatusRecebida, entities.StatusEntregue)
		var transitionErr *InvalidTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if transitionErr.From != entities.StatusRecebida || transitionErr.To != entities.StatusEntregue {
			t.Fatalf("unexpected error fields: %+v", transitionErr)
		}
		if len(transitionErr.Allowed) != 1 || transitionErr.Allowed[0] != entities.StatusEmDiagnostico {
			t.Fatalf("expected allowed [em_diagnostico], got %v", transitionErr.Allowed)
		}
		if !strings.Contains(transitionErr.Error(), "allowed: [em_diagnostico]") {
			t.Fatalf("expected message to list allowed targets, got %q", transitionErr.Error())
		}
	})

	t.Run("terminal status has no exits", func(t *testing.T) {
		err := ValidateTransition(entities.StatusEntregue, entities.StatusRecebida)
		var transitionErr *InvalidTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if len(transitionErr.Allowed) != 0 {
			t.Fatalf("expected empty allowed set, got %v", transitionErr.Allowed)
		}
	})
}
