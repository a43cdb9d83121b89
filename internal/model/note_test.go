package model

import (
	"errors"
	"testing"
)

func TestNote_Validate(t *testing.T) {
	tests := []struct {
		name    string
		note    Note
		wantErr bool
	}{
		{name: "valid note", note: Note{Title: "Groceries", Content: "Milk"}, wantErr: false},
		{name: "empty title", note: Note{Title: "", Content: "Milk"}, wantErr: true},
		{name: "whitespace title", note: Note{Title: "   ", Content: "Milk"}, wantErr: true},
		{name: "empty content is fine", note: Note{Title: "Groceries"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if tt.wantErr && !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("Validate() = %v, want ErrEmptyTitle", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNote_IsEmpty(t *testing.T) {
	if !(&Note{}).IsEmpty() {
		t.Error("zero note should be empty")
	}
	if (&Note{Title: "x"}).IsEmpty() {
		t.Error("note with title should not be empty")
	}
}
