package logic

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/models"
)

// LogTimeFormat - timestamp format of result log entries
const LogTimeFormat = "02.01.2006 15:04:05"

// APIClient - the remote calls the pipeline needs; satisfied by
// functions.Client and by fakes in tests
type APIClient interface {
	SearchGroup(name string) (bool, error)
	CreateGroup(name string) (*models.ProvisioningResult, error)
	CreateUser(payload url.Values) (*models.ProvisioningResult, error)
}

// Emitter - receives each successfully created record, with its final
// plaintext password, to render the credential handout
type Emitter interface {
	Emit(record models.UserRecord) error
}

// Summary - outcome counts of one run
type Summary struct {
	Created int
	Failed  int
}

// Pipeline - realizes user records as remote accounts, strictly
// sequentially and in input order
type Pipeline struct {
	cfg     *config.Config
	client  APIClient
	emitter Emitter
	now     func() time.Time
}

// NewPipeline - assembles a pipeline from its collaborators
func NewPipeline(cfg *config.Config, client APIClient, emitter Emitter) *Pipeline {
	return &Pipeline{cfg: cfg, client: client, emitter: emitter, now: time.Now}
}

// Run - processes all records in order. Transport failures abort the
// whole run; an application-level failure code from the platform is
// logged and the batch continues with the next record.
func (p *Pipeline) Run(records []models.UserRecord) (*Summary, error) {
	summary := &Summary{}
	for _, record := range records {
		if err := p.provision(record, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (p *Pipeline) provision(record models.UserRecord, summary *Summary) error {
	if record.Password == "" && p.cfg.GeneratePasswords {
		password, err := GeneratePassword(p.cfg.PasswordLength)
		if err != nil {
			return err
		}
		record.Password = password
	}

	logrus.WithFields(logrus.Fields{
		"user":   record.LoginName,
		"groups": record.Groups,
		"quota":  record.Quota,
	}).Info("creating user")

	payload := url.Values{}
	payload.Set("userid", record.LoginName)
	payload.Set("displayName", record.DisplayName)
	payload.Set("password", record.Password)
	payload.Set("email", record.Email)
	payload.Set("quota", record.Quota)
	payload.Set("language", p.cfg.Language)

	// groups must exist server-side before the user payload can
	// reference them
	for _, group := range record.GroupList(p.cfg.GroupDelimiter) {
		if err := p.ensureGroup(group); err != nil {
			return err
		}
		payload.Add("groups[]", group)
	}
	for _, group := range record.GroupAdminList(p.cfg.GroupDelimiter) {
		payload.Add("subadmin[]", group)
	}

	result, err := p.client.CreateUser(payload)
	if err != nil {
		return err
	}
	if err := p.appendResultLog(record.LoginName, result); err != nil {
		return err
	}
	fmt.Printf("%s %s = %s\n", result.Status, result.StatusCode, result.Message)

	if !result.Succeeded() {
		summary.Failed++
		logrus.WithFields(logrus.Fields{
			"user":    record.LoginName,
			"code":    result.StatusCode,
			"message": result.Message,
		}).Warn("user not created")
		return nil
	}
	summary.Created++
	return p.emitter.Emit(record)
}

// ensureGroup - query-then-create; the group name is referenced by the
// caller whether it pre-existed or was just created
func (p *Pipeline) ensureGroup(name string) error {
	exists, err := p.client.SearchGroup(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	result, err := p.client.CreateGroup(name)
	if err != nil {
		return err
	}
	logrus.Infof("create group %q: %s %s = %s", name, result.Status, result.StatusCode, result.Message)
	return nil
}

// appendResultLog - one block per processed record in the durable log;
// the file is opened and closed per record
func (p *Pipeline) appendResultLog(login string, result *models.ProvisioningResult) error {
	path := filepath.Join(p.cfg.OutputDir, "output.log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening result log %s", path)
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "\nUSER: %s\nTIME: %s\nRESPONSE: %s %s = %s\n",
		login, p.now().Format(LogTimeFormat), result.Status, result.StatusCode, result.Message)
	return errors.Wrap(err, "writing result log")
}
