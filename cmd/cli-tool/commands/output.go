package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"cointransfer/internal/domain"
)

// receiptJSON keeps the {Code, Height, TxHash} triple at the top level so
// scripts can read it without knowing the rest of the receipt.
type receiptJSON struct {
	Code   uint32                 `json:"code"`
	Height int64                  `json:"height"`
	TxHash domain.TxHash          `json:"txhash"`
	Status domain.InclusionStatus `json:"status"`
	Error  *errorBody             `json:"error,omitempty"`
	domain.TransferReceipt
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorBody(err error) *errorBody {
	if err == nil {
		return nil
	}
	return &errorBody{Code: domain.Classify(err).Code, Message: err.Error()}
}

// useStyling enables colors only when w is an interactive terminal.
func useStyling(w io.Writer) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}

// printReceipt writes r. In JSON mode a failure that happened after the
// hash was known is folded into the same document.
func printReceipt(w io.Writer, r domain.TransferReceipt, failure error, asJSON bool) error {
	if asJSON {
		return writeJSON(w, receiptJSON{
			Code:            r.Result.Code,
			Height:          r.Result.Height,
			TxHash:          r.Result.TxHash,
			Status:          r.Result.Status,
			Error:           newErrorBody(failure),
			TransferReceipt: r,
		})
	}
	useStyling(w)
	rows := [][]string{
		{"Status", string(r.Result.Status)},
		{"Tx hash", r.Result.TxHash.String()},
		{"From", r.Sender.String()},
		{"To", r.Recipient.String()},
		{"Amount", r.Amount.String()},
		{"Fee", fmt.Sprintf("%s (gas limit %d)", r.Fee.Amount, r.Fee.GasLimit)},
		{"Sequence", strconv.FormatUint(r.Sequence, 10)},
	}
	if r.Result.Height > 0 {
		rows = append(rows, []string{"Height", strconv.FormatInt(r.Result.Height, 10)})
	}
	if r.Result.GasUsed > 0 {
		rows = append(rows, []string{"Gas used", strconv.FormatInt(r.Result.GasUsed, 10)})
	}
	if r.Result.Code != 0 {
		rows = append(rows, []string{"Code", fmt.Sprintf("%s/%d", r.Result.Codespace, r.Result.Code)})
	}
	if r.Result.Log != "" {
		rows = append(rows, []string{"Log", r.Result.Log})
	}
	out, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func printAddress(w io.Writer, addr domain.Address, path string, asJSON bool) error {
	if asJSON {
		return writeJSON(w, struct {
			Address domain.Address `json:"address"`
			Path    string         `json:"path"`
		}{addr, path})
	}
	_, err := fmt.Fprintf(w, "Address: %s\nPath:    %s\n", addr, path)
	return err
}

// reportError writes the classified error. With --json the error object goes
// to stdout so the output stays one JSON document per run; receiptPrinted
// means that document was already written.
func reportError(stdout, stderr io.Writer, err error, asJSON, receiptPrinted bool) {
	class := domain.Classify(err)
	if asJSON {
		if !receiptPrinted {
			_ = writeJSON(stdout, struct {
				Error *errorBody `json:"error"`
			}{newErrorBody(err)})
		}
		return
	}
	useStyling(stderr)
	fmt.Fprint(stderr, pterm.Error.Sprintln(class.Code+": "+err.Error()))
	if errors.Is(err, domain.ErrTimedOutPendingUnknown) {
		fmt.Fprint(stderr, pterm.Warning.Sprintln("the transfer may still be included; look the hash up before retrying"))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
