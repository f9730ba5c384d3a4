package checkout

import (
	"context"

	"github.com/qimma-sa/kitchens-api/validation"
)

// VisitWorkflow submits a measurement-visit booking. It never touches the
// cart; its only success side effect is resetting the form.
type VisitWorkflow struct {
	api *Client

	Form validation.VisitRequestForm

	state       State
	fieldErrors validation.Errors
	message     string
}

func NewVisitWorkflow(api *Client) *VisitWorkflow {
	return &VisitWorkflow{api: api}
}

func (w *VisitWorkflow) State() State { return w.state }

func (w *VisitWorkflow) FieldErrors() validation.Errors { return w.fieldErrors }

func (w *VisitWorkflow) ErrorMessage() string { return w.message }

func (w *VisitWorkflow) Submit(ctx context.Context) error {
	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}

	if errs := validation.ValidateVisitRequest(w.Form); errs != nil {
		w.fieldErrors = errs
		w.state = StateEditing
		return errs
	}
	w.fieldErrors = nil

	w.state = StateSubmitting
	_, err := w.api.CreateVisitRequest(ctx, VisitPayload{VisitRequestForm: w.Form})
	if err != nil {
		w.state = StateEditing
		w.message = messageFor(err)
		return err
	}

	w.Form = validation.VisitRequestForm{}
	w.message = ""
	w.state = StateSucceeded
	return nil
}
