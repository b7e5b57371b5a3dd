package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationIsReadBy(t *testing.T) {
	n := Notification{ReadBy: []int64{1, 5}}

	assert.True(t, n.IsReadBy(1))
	assert.True(t, n.IsReadBy(5))
	assert.False(t, n.IsReadBy(2))
}

func TestNotificationTargetsUser(t *testing.T) {
	broadcast := Notification{Broadcast: true, TargetRole: "all"}
	assert.True(t, broadcast.TargetsUser(7, "student"))

	roleScoped := Notification{Broadcast: true, TargetRole: "warden"}
	assert.True(t, roleScoped.TargetsUser(7, "warden"))
	assert.False(t, roleScoped.TargetsUser(7, "student"))

	direct := Notification{Recipients: []int64{7}}
	assert.True(t, direct.TargetsUser(7, "student"))
	assert.False(t, direct.TargetsUser(8, "student"))
}
