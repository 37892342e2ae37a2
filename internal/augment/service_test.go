package augment

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"resume-builder/internal/profile"
)

type fakeLLM struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.reply(prompt)
}

func TestNormalizeBullets(t *testing.T) {
	got := NormalizeBullets("- Led X.\n- Built Y\n- ")
	want := []string{"Led X.", "Built Y."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeBulletsPlainLines(t *testing.T) {
	got := NormalizeBullets("Shipped the thing\n\n  Improved latency.  ")
	want := []string{"Shipped the thing.", "Improved latency."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAugmentAllCallsProviderPerExperience(t *testing.T) {
	fake := &fakeLLM{reply: func(prompt string) (string, error) {
		return "- Did work", nil
	}}
	svc := NewService(fake)

	entries := []profile.Experience{
		{Company: "Acme", Role: "Engineer", StartDate: "2021", EndDate: "2023", FullDescription: "raw one"},
		{Company: "Globex", Role: "Analyst", StartDate: "2023", EndDate: "2024", FullDescription: "raw two"},
	}
	out, err := svc.AugmentAll(context.Background(), entries, "Go:expert", "backend role")
	if err != nil {
		t.Fatalf("AugmentAll: %v", err)
	}
	if len(fake.prompts) != 2 {
		t.Fatalf("got %d provider calls, want 2", len(fake.prompts))
	}
	for _, exp := range out {
		if exp.Description != "Did work." {
			t.Fatalf("unexpected description: %q", exp.Description)
		}
	}
	if out[0].FullDescription != "raw one" || out[1].FullDescription != "raw two" {
		t.Fatalf("raw descriptions lost: %+v", out)
	}
}

func TestAugmentAllPromptMentionsInputs(t *testing.T) {
	fake := &fakeLLM{reply: func(prompt string) (string, error) {
		return "- ok", nil
	}}
	svc := NewService(fake)

	entries := []profile.Experience{{Company: "Acme", Role: "Engineer", StartDate: "2021", EndDate: "2023"}}
	if _, err := svc.AugmentAll(context.Background(), entries, "Go:expert", "build services"); err != nil {
		t.Fatalf("AugmentAll: %v", err)
	}

	prompt := fake.prompts[0]
	for _, want := range []string{"Acme", "Engineer", "2021", "2023", "Go:expert", "build services"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}
}

func TestAugmentAllFailsWhole(t *testing.T) {
	fake := &fakeLLM{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Globex") {
			return "", errors.New("rate limited")
		}
		return "- ok", nil
	}}
	svc := NewService(fake)

	entries := []profile.Experience{
		{Company: "Acme", Role: "Engineer"},
		{Company: "Globex", Role: "Analyst"},
	}
	if _, err := svc.AugmentAll(context.Background(), entries, "", ""); !errors.Is(err, ErrAugmentFailed) {
		t.Fatalf("got %v, want ErrAugmentFailed", err)
	}
}

func TestAugmentAllJoinsBullets(t *testing.T) {
	fake := &fakeLLM{reply: func(prompt string) (string, error) {
		return "- Led X.\n- Built Y", nil
	}}
	svc := NewService(fake)

	out, err := svc.AugmentAll(context.Background(), []profile.Experience{{Company: "Acme", Role: "Engineer"}}, "", "")
	if err != nil {
		t.Fatalf("AugmentAll: %v", err)
	}
	if out[0].Description != "Led X.; Built Y." {
		t.Fatalf("unexpected joined bullets: %q", out[0].Description)
	}
}

func TestAugmentAllEmptyInput(t *testing.T) {
	fake := &fakeLLM{reply: func(prompt string) (string, error) {
		t.Fatal("provider should not be called")
		return "", nil
	}}
	svc := NewService(fake)

	out, err := svc.AugmentAll(context.Background(), nil, "", "")
	if err != nil {
		t.Fatalf("AugmentAll: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d entries, want 0", len(out))
	}
}
