//go:build unit

package domain

import (
	"strings"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestLogStatus_CanTransitTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		from LogStatus
		to   LogStatus
		want bool
	}{
		{from: LogStatusRequested, to: LogStatusDelivered, want: true},
		{from: LogStatusRequested, to: LogStatusFailed, want: true},
		{from: LogStatusRequested, to: LogStatusCancelled, want: true},
		{from: LogStatusRequested, to: LogStatusRequested, want: false},
		{from: LogStatusDelivered, to: LogStatusFailed, want: false},
		{from: LogStatusFailed, to: LogStatusDelivered, want: false},
		{from: LogStatusCancelled, to: LogStatusDelivered, want: false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransitTo(tc.to))
		})
	}
}

func TestRoutingKey(t *testing.T) {
	t.Parallel()

	id := RoutingIdentifier("PJ12ab34cd5", Destination{Country: "Cameroon", Operator: "MTN"})
	assert.Equal(t, "PJ12ab34cd5_Cameroon_MTN", id)
	assert.Equal(t, "PJ12ab34cd5.Cameroon.MTN", RoutingKey(id))
}

func TestPublishCommand_Validate(t *testing.T) {
	t.Parallel()

	valid := PublishCommand{
		ServiceKind:      ServiceKindSMS,
		ProjectReference: "PJ1",
		Request:          SendRequest{Recipient: "+237677000000", Body: "hello"},
	}
	assert.NoError(t, valid.Validate())

	unsupported := valid
	unsupported.ServiceKind = ServiceKindNotification
	assert.ErrorIs(t, unsupported.Validate(), errs.ErrUnsupportedService)

	noBody := valid
	noBody.Request.Body = ""
	assert.ErrorIs(t, noBody.Validate(), errs.ErrInvalidParameter)

	noRecipient := valid
	noRecipient.Request.Recipient = "  "
	assert.ErrorIs(t, noRecipient.Validate(), errs.ErrInvalidParameter)

	maxSid := valid
	maxSid.Request.ClientSuppliedID = strings.Repeat("S", MaxClientSIDLength)
	assert.NoError(t, maxSid.Validate())

	longSid := valid
	longSid.Request.ClientSuppliedID = strings.Repeat("S", MaxClientSIDLength+1)
	assert.ErrorIs(t, longSid.Validate(), errs.ErrInvalidParameter)

	longRecipient := valid
	longRecipient.Request.Recipient = "+1" + strings.Repeat("4", MaxRecipientLength)
	assert.ErrorIs(t, longRecipient.Validate(), errs.ErrInvalidParameter)
}

func TestDeliveryLog_Validate(t *testing.T) {
	t.Parallel()

	log := DeliveryLog{ID: "L1", ProjectReference: "PJ1", Status: LogStatusRequested}
	assert.NoError(t, log.Validate())

	noID := log
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), errs.ErrInvalidParameter)

	badStatus := log
	badStatus.Status = "sending"
	assert.ErrorIs(t, badStatus.Validate(), errs.ErrInvalidParameter)
}

func TestExternalCarrierCredentials(t *testing.T) {
	t.Parallel()

	c := ExternalCarrierCredentials{AccountID: "AC1", AuthToken: "tok"}
	assert.False(t, c.Complete())
	c.MessagingServiceID = "MG1"
	assert.True(t, c.Complete())
	assert.Equal(t, CarrierProviderTwilio, c.ProviderName())
	c.Provider = "Aliyun"
	assert.Equal(t, CarrierProviderAliyun, c.ProviderName())
}

func TestNewProjectReference(t *testing.T) {
	t.Parallel()

	ref, err := NewProjectReference(42)
	assert.NoError(t, err)
	assert.Regexp(t, `^PJ42[0-9a-f]{8}$`, ref)
}
