package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type form struct {
	ID    string
	Title string
}

func TestDialog(t *testing.T) {
	var d Dialog[form]
	assert.False(t, d.IsOpen())

	d.Update(func(f form) form { f.Title = "ignored"; return f })
	p, ok := d.Payload()
	assert.False(t, ok)
	assert.Empty(t, p.Title)

	d.Open(form{ID: "1", Title: "Work"})
	d.Update(func(f form) form { f.Title = "Play"; return f })
	p, ok = d.Payload()
	assert.True(t, ok)
	assert.Equal(t, form{ID: "1", Title: "Play"}, p)

	d.Close()
	p, ok = d.Payload()
	assert.False(t, ok)
	assert.Equal(t, form{}, p)
}

func TestConfirm(t *testing.T) {
	var c Confirm[string]

	_, ok := c.Accept()
	assert.False(t, ok)

	c.Ask("7")
	assert.True(t, c.IsOpen())
	got, ok := c.Accept()
	assert.True(t, ok)
	assert.Equal(t, "7", got)
	assert.False(t, c.IsOpen())

	c.Ask("8")
	c.Cancel()
	_, ok = c.Accept()
	assert.False(t, ok)
}

func TestMenu_AtMostOneOpen(t *testing.T) {
	var m Menu[string]

	m.Toggle("a")
	assert.True(t, m.IsOpen("a"))

	m.Toggle("b")
	assert.False(t, m.IsOpen("a"))
	assert.True(t, m.IsOpen("b"))

	m.Toggle("b")
	_, open := m.Open()
	assert.False(t, open)

	m.Toggle("c")
	m.Close()
	assert.False(t, m.IsOpen("c"))
}
