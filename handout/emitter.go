// Package handout renders the printable credential documents handed to
// newly created users: one PDF page per user with the server address,
// the plaintext credentials and a login QR code.
package handout

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/models"
)

// RunStampFormat - timestamp embedded in generated file names
const RunStampFormat = "2006-01-02_15-04-05"

// Emitter - builds credential documents for successfully created
// users. In combined mode every success appends a page to one document
// that is finalized once after the run; in per-user mode each success
// is written out immediately as its own single-page document.
type Emitter struct {
	cfg       *config.Config
	serverURL string
	runStamp  string
	doc       *fpdf.Fpdf
	qrImages  []string
	emitted   int
}

// NewEmitter - prepares an emitter for one run against the given server
func NewEmitter(cfg *config.Config, serverURL string) *Emitter {
	return &Emitter{
		cfg:       cfg,
		serverURL: serverURL,
		runStamp:  time.Now().Format(RunStampFormat),
	}
}

// Emit - renders the handout for one created user; the record carries
// the final plaintext password used in the creation request
func (e *Emitter) Emit(record models.UserRecord) error {
	payload := LoginPayload(record.LoginName, record.Password, e.serverURL)
	qrPath, err := writeQRImage(e.cfg.TempDir, record.LoginName, payload)
	if err != nil {
		return errors.Wrapf(err, "rendering login code for %s", record.LoginName)
	}
	e.qrImages = append(e.qrImages, qrPath)

	if e.cfg.CombinedPDF {
		if e.doc == nil {
			e.doc = newDocument()
		}
		e.addPage(e.doc, record, qrPath)
		e.emitted++
		return e.doc.Error()
	}

	doc := newDocument()
	e.addPage(doc, record, qrPath)
	path := filepath.Join(e.cfg.OutputDir, fmt.Sprintf("%s_%s.pdf", record.LoginName, e.runStamp))
	if err := doc.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	e.emitted++
	logrus.WithField("file", path).Debug("credential document written")
	return nil
}

// Finalize - writes the combined document (if any) and removes the
// transient QR images
func (e *Emitter) Finalize() error {
	defer e.cleanup()
	if !e.cfg.CombinedPDF || e.doc == nil {
		return nil
	}
	path := filepath.Join(e.cfg.OutputDir, fmt.Sprintf("userlist_%s.pdf", e.runStamp))
	if err := e.doc.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	logrus.WithField("file", path).Infof("credential documents for %d users written", e.emitted)
	return nil
}

func (e *Emitter) cleanup() {
	for _, path := range e.qrImages {
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).Debugf("could not remove %s", path)
		}
	}
	e.qrImages = nil
}

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(25, 25, 25)
	return doc
}

func (e *Emitter) addPage(doc *fpdf.Fpdf, record models.UserRecord, qrPath string) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	if e.cfg.LogoPath != "" {
		doc.ImageOptions(e.cfg.LogoPath, 25, 18, 50, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		doc.Ln(30)
	}

	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 8, tr(fmt.Sprintf("Hello %s,", record.DisplayName)), "", 1, "L", false, 0, "")
	doc.Ln(4)
	doc.MultiCell(0, 7, tr("a cloud account has been created for you. You can sign in with the following credentials:"), "", "L", false)
	doc.Ln(8)

	writeField := func(label, value string) {
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 13)
		doc.CellFormat(0, 8, tr(value), "", 1, "L", false, 0, "")
		doc.Ln(3)
	}
	writeField("Server address:", e.serverURL)
	writeField("Username:", record.LoginName)
	writeField("Password:", record.Password)

	doc.Ln(6)
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, "Or scan this code with the mobile app:", "", 1, "L", false, 0, "")
	doc.ImageOptions(qrPath, 25, doc.GetY()+2, 45, 45, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}
