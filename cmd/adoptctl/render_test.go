package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

func TestScreenErr(t *testing.T) {
	raw := errors.New("get pets: HTTP 500")

	assert.Equal(t, "載入數據失敗", screenErr(raw, "載入數據失敗").Error())
	assert.Same(t, raw, screenErr(raw, ""))
}

func TestPrintBanner(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	printBanner(&buf, notification.Demo, 3)

	assert.Contains(t, buf.String(), notification.Demo.Sender)
	assert.Contains(t, buf.String(), notification.Demo.ThreadID+", 3 unread")
}

func TestPetRows(t *testing.T) {
	pets := []pet.Pet{{ID: "1", Name: "Bella"}, {ID: "2", Name: "Milo"}}

	rows := petRows(pets, func(id string) bool { return id == "2" })

	assert.Equal(t, "", rows[0][len(rows[0])-1])
	assert.Equal(t, "♥", rows[1][len(rows[1])-1])
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "NT$1500", money(1500))
}
