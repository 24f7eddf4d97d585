package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetKVKKApproval(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("approving sets the timestamp", func(t *testing.T) {
		p := &Patient{Name: "Ayşe Yılmaz"}
		p.SetKVKKApproval(true, now)

		assert.True(t, p.KVKKApproved)
		require.NotNil(t, p.KVKKApprovedAt)
		assert.Equal(t, now, *p.KVKKApprovedAt)
	})

	t.Run("re-approving keeps the original timestamp", func(t *testing.T) {
		p := &Patient{Name: "Ayşe Yılmaz"}
		p.SetKVKKApproval(true, now)
		later := now.Add(48 * time.Hour)
		p.SetKVKKApproval(true, later)

		require.NotNil(t, p.KVKKApprovedAt)
		assert.Equal(t, now, *p.KVKKApprovedAt)
	})

	t.Run("revoking clears the timestamp", func(t *testing.T) {
		p := &Patient{Name: "Ayşe Yılmaz"}
		p.SetKVKKApproval(true, now)
		p.SetKVKKApproval(false, now.Add(time.Hour))

		assert.False(t, p.KVKKApproved)
		assert.Nil(t, p.KVKKApprovedAt)
	})
}

func TestPatientAge(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("unknown without date of birth", func(t *testing.T) {
		p := &Patient{}
		_, ok := p.Age(now)
		assert.False(t, ok)
	})

	t.Run("birthday already passed this year", func(t *testing.T) {
		dob := time.Date(1980, 3, 1, 0, 0, 0, 0, time.UTC)
		p := &Patient{DateOfBirth: &dob}
		age, ok := p.Age(now)
		require.True(t, ok)
		assert.Equal(t, 45, age)
	})

	t.Run("birthday still ahead this year", func(t *testing.T) {
		dob := time.Date(1980, 11, 20, 0, 0, 0, 0, time.UTC)
		p := &Patient{DateOfBirth: &dob}
		age, ok := p.Age(now)
		require.True(t, ok)
		assert.Equal(t, 44, age)
	})
}
