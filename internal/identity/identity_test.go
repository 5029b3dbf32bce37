package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-profiler/internal/types"
)

const (
	surveyNameHeader  = "Please type your name here so a personal report can be created"
	surveyEmailHeader = "Please type your email address here so a personal report can be created"
)

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("john@example.com"))
	assert.True(t, LooksLikeEmail(" jane.doe@corp.co.uk "))
	assert.False(t, LooksLikeEmail("John Smith"))
	assert.False(t, LooksLikeEmail("john@example"))
	assert.False(t, LooksLikeEmail(""))
}

func TestLooksLikeName(t *testing.T) {
	assert.True(t, LooksLikeName("John Smith"))
	assert.False(t, LooksLikeName("john@example.com"))
	assert.False(t, LooksLikeName("  "))
	assert.False(t, LooksLikeName("nan"))
	assert.False(t, LooksLikeName("None"))
	assert.False(t, LooksLikeName("N/A"))
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "John Smith", NameFromEmail("john.smith@example.com"))
	assert.Equal(t, "Jane Doe", NameFromEmail("jane_doe@example.com"))
	assert.Equal(t, "Mary Jane Watson", NameFromEmail("mary-jane.watson@example.com"))
	assert.Equal(t, "plain", NameFromEmail("plain"))
}

func TestResolveAlignedColumns(t *testing.T) {
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: "Name", Values: []string{"John Smith", "Jane Doe"}},
		{Name: "Email", Values: []string{"john@example.com", "jane@example.com"}},
		{Name: "Q1", Values: []string{"3", "4"}},
	}}

	r := New(nil)
	res := r.Resolve(table)
	assert.Equal(t, 0, res.NameColumn)
	assert.Equal(t, 1, res.EmailColumn)
	assert.False(t, res.Swapped)

	name, email := r.Extract(table, 0, res)
	assert.Equal(t, "John Smith", name)
	assert.Equal(t, "john@example.com", email)
}

func TestResolveSwappedColumns(t *testing.T) {
	// The "Name" column holds emails and "Email" holds names: the resolver
	// must swap the two for every row.
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: "Name", Values: []string{"john@example.com", "jane@example.com"}},
		{Name: "Email", Values: []string{"John Smith", "Jane Doe"}},
	}}

	r := New(nil)
	res := r.Resolve(table)
	require.True(t, res.Swapped)
	assert.Equal(t, 1, res.NameColumn)
	assert.Equal(t, 0, res.EmailColumn)

	name, email := r.Extract(table, 0, res)
	assert.Equal(t, "John Smith", name)
	assert.Equal(t, "john@example.com", email)
}

func TestResolveSurveyFieldsPreferred(t *testing.T) {
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: surveyNameHeader, Values: []string{"Alice Johnson"}},
		{Name: surveyEmailHeader, Values: []string{"alice@example.com"}},
		{Name: "Name", Values: []string{"Wrong Person"}},
		{Name: "Email", Values: []string{"wrong@example.com"}},
	}}

	res := New(nil).Resolve(table)
	assert.Equal(t, 0, res.NameColumn)
	assert.Equal(t, 1, res.EmailColumn)
}

func TestResolveEmptySurveyFieldsFallBack(t *testing.T) {
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: surveyNameHeader, Values: []string{"", " "}},
		{Name: surveyEmailHeader, Values: []string{"", ""}},
		{Name: "Name", Values: []string{"Alice Johnson", "Bob Wilson"}},
		{Name: "Email", Values: []string{"alice@example.com", "bob@example.com"}},
	}}

	r := New(nil)
	res := r.Resolve(table)
	assert.Equal(t, 2, res.NameColumn)
	assert.Equal(t, 3, res.EmailColumn)

	name, email := r.Extract(table, 1, res)
	assert.Equal(t, "Bob Wilson", name)
	assert.Equal(t, "bob@example.com", email)
}

func TestExtractFallbacks(t *testing.T) {
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: "Name", Values: []string{"", "carol.white@example.com", ""}},
		{Name: "Email", Values: []string{"dave@example.com", "", ""}},
	}}
	r := New(nil)
	res := Resolution{NameColumn: 0, EmailColumn: 1}

	// Row 0: no name anywhere, derive from email.
	name, email := r.Extract(table, 0, res)
	assert.Equal(t, "Dave", name)
	assert.Equal(t, "dave@example.com", email)

	// Row 1: email sitting in the name column covers both.
	name, email = r.Extract(table, 1, res)
	assert.Equal(t, "Carol White", name)
	assert.Equal(t, "carol.white@example.com", email)

	// Row 2: nothing at all. Name is never blank; email may be.
	name, email = r.Extract(table, 2, res)
	assert.Equal(t, AnonymousName, name)
	assert.Equal(t, "", email)
}

func TestExtractNoColumnsResolved(t *testing.T) {
	table := &types.ResponseTable{Columns: []types.Column{
		{Name: "Q1", Values: []string{"3"}},
	}}

	name, email := New(nil).Extract(table, 0, Resolution{NameColumn: -1, EmailColumn: -1})
	assert.Equal(t, AnonymousName, name)
	assert.Equal(t, "", email)
}
