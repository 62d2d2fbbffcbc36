package mail

import (
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Send_BuildsHtmlMessage(t *testing.T) {

	client := NewClient("smtp.example.com", 587, "user", "secret", "recruiting@example.com")

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	client.SetSendFunc(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	})

	err := client.Send("jordan@example.com", "New Opportunity", "<p>Hello</p>")

	assert.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "recruiting@example.com", gotFrom)
	assert.Equal(t, []string{"jordan@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: New Opportunity\r\n")
	assert.Contains(t, string(gotMsg), "Content-Type: text/html")
	assert.Contains(t, string(gotMsg), "<p>Hello</p>")
}

func Test_Send_AnonymousWhenNoUsername(t *testing.T) {

	client := NewClient("localhost", 1025, "", "", "recruiting@example.com")

	var gotAuth smtp.Auth
	client.SetSendFunc(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAuth = a
		return nil
	})

	assert.NoError(t, client.Send("jordan@example.com", "hi", "body"))
	assert.Nil(t, gotAuth)
}
