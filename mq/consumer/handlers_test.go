package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/models/entities"
	"github.com/Xushengqwer/member_service/models/enums"
	"github.com/Xushengqwer/member_service/models/events"
	"github.com/Xushengqwer/member_service/myErrors"
	"github.com/Xushengqwer/member_service/service"
)

type fakeUserSvc struct {
	service.UserQueryService
	added []string
	err   error
}

func (f *fakeUserSvc) AddUserName(_ context.Context, name string) error {
	f.added = append(f.added, name)
	return f.err
}

type fakeInvitecodes struct {
	service.InvitecodeMgmtService
	codes map[string]*entities.Invitecode
}

func (f *fakeInvitecodes) GetInvitecode(_ context.Context, code string) (*entities.Invitecode, error) {
	ic, ok := f.codes[code]
	if !ok {
		return nil, myErrors.ErrInvitecodeNotFound
	}
	cp := *ic
	return &cp, nil
}

func (f *fakeInvitecodes) MarkUsed(_ context.Context, code, userID string) (bool, error) {
	ic, ok := f.codes[code]
	if !ok || ic.Status != enums.InvitecodeStatusUnused {
		return false, nil
	}
	ic.Status = enums.InvitecodeStatusUsed
	ic.UserID = userID
	return true, nil
}

type notified struct {
	userID, dataID string
	dataType       enums.NotificationDataType
}

type fakeNotifier struct {
	service.NotificationMgmtService
	sent []notified
}

func (f *fakeNotifier) AddNotification(_ context.Context, userID, dataID string, dataType enums.NotificationDataType) error {
	f.sent = append(f.sent, notified{userID, dataID, dataType})
	return nil
}

func message(t *testing.T, v any) kafka.Message {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return kafka.Message{Value: raw}
}

func TestUserRegisteredHandler(t *testing.T) {
	users := &fakeUserSvc{}
	h := NewUserRegisteredHandler(zap.NewNop(), users)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, message(t, events.UserRegisteredEvent{EventID: "e1", UserID: "1", UserName: " alice "})))
	assert.Equal(t, []string{"alice"}, users.added)

	// 空用户名与无法解析的消息直接丢弃
	require.NoError(t, h.Handle(ctx, message(t, events.UserRegisteredEvent{EventID: "e2", UserID: "2"})))
	require.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte("{")}))
	assert.Len(t, users.added, 1)

	users.err = errors.New("redis down")
	assert.Error(t, h.Handle(ctx, message(t, events.UserRegisteredEvent{EventID: "e3", UserID: "3", UserName: "bob"})))
}

func TestInvitecodeUsedHandler(t *testing.T) {
	codes := &fakeInvitecodes{codes: map[string]*entities.Invitecode{
		"abc": {ID: "1", Code: "abc", GeneratorID: "100", Status: enums.InvitecodeStatusUnused},
	}}
	notifier := &fakeNotifier{}
	h := NewInvitecodeUsedHandler(zap.NewNop(), codes, codes, notifier)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, message(t, events.InvitecodeUsedEvent{EventID: "e1", Code: "abc", UserID: "200"})))
	assert.Equal(t, enums.InvitecodeStatusUsed, codes.codes["abc"].Status)
	assert.Equal(t, []notified{{"100", "200", enums.NotificationInvitecodeUsed}}, notifier.sent)

	// 重复投递不再通知
	require.NoError(t, h.Handle(ctx, message(t, events.InvitecodeUsedEvent{EventID: "e1", Code: "abc", UserID: "200"})))
	assert.Len(t, notifier.sent, 1)

	require.NoError(t, h.Handle(ctx, message(t, events.InvitecodeUsedEvent{EventID: "e2", Code: "missing", UserID: "201"})))
	assert.Len(t, notifier.sent, 1)
}
