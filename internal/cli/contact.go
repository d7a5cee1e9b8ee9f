package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yildizm/folio/internal/contact"
)

// promptField asks for one form field. Replaced in tests.
var promptField = runFieldPrompt

// stdinIsTerminal reports whether missing fields can be asked for.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

func newContactCommand() *cobra.Command {
	var form contact.Form

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		Long: `Fill in and send the contact form from the command line.

Fields not given as flags are asked for interactively. Submission is
simulated: nothing leaves the machine, a receipt id is printed instead.`,
		Example: `  folio contact
  folio contact --name Sam --email sam@example.com --subject Hi --message "Nice work"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if stdinIsTerminal() {
				if err := fillMissing(&form); err != nil {
					return err
				}
			}

			log := newLogger(cfg)
			log.SetOutput(cmd.ErrOrStderr())
			handler := contact.NewHandler(contact.SimulatedSubmitter{Delay: cfg.Contact.SubmitDelay}, log.WithComponent("contact"))

			out := cmd.OutOrStdout()
			if len(form.Validate()) == 0 {
				fmt.Fprintln(out, GetEmoji("sending")+" Sending...")
			}

			res := handler.Send(cmd.Context(), form)
			switch {
			case len(res.Errors) > 0:
				for _, e := range res.Errors {
					fmt.Fprintln(out, GetEmoji("error")+" "+e)
				}
				return errors.New("message not sent")
			case !res.OK:
				fmt.Fprintln(out, GetEmoji("error")+" "+res.Message)
				return errors.New("message not sent")
			}

			fmt.Fprintln(out, GetEmoji("success")+" "+res.Message)
			fmt.Fprintf(out, "   Receipt: %s\n", res.Receipt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")

	return cmd
}

// fillMissing prompts for every blank field, in form order.
func fillMissing(form *contact.Form) error {
	for _, field := range contact.Fields {
		if strings.TrimSpace(form.Get(field)) != "" {
			continue
		}
		value, err := promptField(field)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		form.Set(field, value)
	}
	return nil
}

func runFieldPrompt(field contact.Field) (string, error) {
	p := promptui.Prompt{
		Label:    strings.ToUpper(field.String()[:1]) + field.String()[1:],
		Validate: fieldValidator(field),
	}
	return p.Run()
}

// fieldValidator applies the same rules as contact.Form.Validate to one field.
func fieldValidator(field contact.Field) promptui.ValidateFunc {
	return func(input string) error {
		if field == contact.FieldEmail && !contact.ValidEmail(input) {
			return errors.New(contact.MsgInvalidEmail)
		}
		if strings.TrimSpace(input) == "" {
			return errors.New(contact.RequiredMessage(field))
		}
		return nil
	}
}
