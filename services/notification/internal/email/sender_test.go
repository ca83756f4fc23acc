package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("shop@gocommerce.local", Mail{
		To:      "jane@x.com",
		Subject: "Order Confirmation",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Order Confirmation"}, msg.GetGenHeader(mail.HeaderSubject))

	to := msg.GetTo()
	require.Len(t, to, 1)
	assert.Equal(t, "jane@x.com", to[0].Address)

	_, err = buildMessage("shop@gocommerce.local", Mail{To: "not an address"})
	assert.Error(t, err)

	_, err = buildMessage("", Mail{To: "jane@x.com"})
	assert.Error(t, err)
}

func TestNoOpSender(t *testing.T) {
	s := NewNoOpSender(zap.NewNop())
	assert.NoError(t, s.Send(context.Background(), Mail{To: "jane@x.com", HTML: "x"}))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, "ab", truncate("ab", 2))
	assert.Equal(t, "Здр...", truncate("Здравствуйте", 3))
	assert.Equal(t, "Jö...", truncate("Jörg", 2))
}
