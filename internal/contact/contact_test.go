package contact

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validForm() Form {
	return Form{Name: "Sam", Email: "Sam@Example.com", Subject: "Hi", Message: "Hello there"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Form)
		want   []string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "bad email", mutate: func(f *Form) { f.Email = "sam@example" }, want: []string{MsgInvalidEmail}},
		{name: "email with space", mutate: func(f *Form) { f.Email = "s am@example.com" }, want: []string{MsgInvalidEmail}},
		{name: "blank email", mutate: func(f *Form) { f.Email = "" }, want: []string{MsgInvalidEmail, "email is required"}},
		{name: "blank subject", mutate: func(f *Form) { f.Subject = "  " }, want: []string{"subject is required"}},
		{
			name:   "everything blank",
			mutate: func(f *Form) { *f = Form{} },
			want:   []string{MsgInvalidEmail, "name is required", "email is required", "subject is required", "message is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			if got := form.Validate(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormGetSet(t *testing.T) {
	var form Form
	for _, f := range Fields {
		form.Set(f, f.String()+"-value")
	}
	for _, f := range Fields {
		if got := form.Get(f); got != f.String()+"-value" {
			t.Errorf("Get(%s) = %q", f, got)
		}
	}
}

type failingSubmitter struct{}

func (failingSubmitter) Submit(context.Context, Form) (Receipt, error) {
	return Receipt{}, errors.New("smtp down")
}

func TestHandlerSend(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h := NewHandler(SimulatedSubmitter{Delay: time.Millisecond, Now: func() time.Time { return fixed }}, nil)

	res := h.Send(context.Background(), validForm())
	if !res.OK || res.Message != MsgSuccess {
		t.Fatalf("Send() = %+v", res)
	}
	if res.Receipt.ID == uuid.Nil || !res.Receipt.SentAt.Equal(fixed) {
		t.Errorf("unexpected receipt %+v", res.Receipt)
	}
}

func TestHandlerSendValidationShortCircuits(t *testing.T) {
	h := NewHandler(failingSubmitter{}, nil)
	res := h.Send(context.Background(), Form{Name: "Sam"})
	if res.OK || res.Message != "" || len(res.Errors) == 0 {
		t.Errorf("Send() = %+v, want validation errors only", res)
	}
}

func TestHandlerSendFailure(t *testing.T) {
	h := NewHandler(failingSubmitter{}, nil)
	res := h.Send(context.Background(), validForm())
	if res.OK || res.Message != MsgFailure {
		t.Errorf("Send() = %+v", res)
	}
}

func TestSimulatedSubmitterHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SimulatedSubmitter{Delay: time.Hour}.Submit(ctx, validForm())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}
