package relationship

import (
	"sync"
	"testing"
	"time"

	"edulink_server/internal/dao/mysql/repository"
	"edulink_server/internal/dto/request"
	"edulink_server/internal/dto/respond"
	"edulink_server/internal/infrastructure/mq"
	"edulink_server/internal/model"
	"edulink_server/pkg/errorx"
)

// ==================== 内存 Repository 实现 ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.UserInfo
}

func newFakeUserRepo(users ...*model.UserInfo) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.UserInfo)}
	for _, u := range users {
		r.users[u.Uuid] = u
	}
	return r
}

func (r *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "record not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUuidForUpdate(uuid string) (*model.UserInfo, error) {
	return r.FindByUuid(uuid)
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.UserInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (r *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.UserInfo, 0, len(uuids))
	for _, id := range uuids {
		if u, ok := r.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Create(user *model.UserInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Uuid] = user
	return nil
}

func (r *fakeUserRepo) Update(user *model.UserInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Uuid] = user
	return nil
}

func (r *fakeUserRepo) UpdateFriends(uuid string, friends model.FriendSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uuid]
	if !ok {
		return errorx.New(errorx.CodeNotFound, "record not found")
	}
	u.Friends = friends
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests []*model.FriendRequest
	byUuid   map[string]*model.FriendRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byUuid: make(map[string]*model.FriendRequest)}
}

func (r *fakeRequestRepo) FindByUuid(uuid string) (*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.byUuid[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "record not found")
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) FindByUuidUnscoped(uuid string) (*model.FriendRequest, error) {
	return r.FindByUuid(uuid)
}

func (r *fakeRequestRepo) FindPendingByPair(userOneId, userTwoId string) (*model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.Status != model.RequestStatusPending {
			continue
		}
		if (req.SenderId == userOneId && req.ReceiverId == userTwoId) ||
			(req.SenderId == userTwoId && req.ReceiverId == userOneId) {
			cp := *req
			return &cp, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (r *fakeRequestRepo) FindPendingBySenderId(senderId string) ([]model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.FriendRequest, 0)
	// 倒序遍历，模拟 created_at DESC
	for i := len(r.requests) - 1; i >= 0; i-- {
		req := r.requests[i]
		if req.SenderId == senderId && req.Status == model.RequestStatusPending {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) FindPendingByReceiverId(receiverId string) ([]model.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.FriendRequest, 0)
	for i := len(r.requests) - 1; i >= 0; i-- {
		req := r.requests[i]
		if req.ReceiverId == receiverId && req.Status == model.RequestStatusPending {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) Create(request *model.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.CreatedAt = time.Now()
	r.requests = append(r.requests, request)
	r.byUuid[request.Uuid] = request
	return nil
}

func (r *fakeRequestRepo) UpdateStatus(uuid string, status int8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.byUuid[uuid]
	if !ok {
		return errorx.New(errorx.CodeNotFound, "record not found")
	}
	req.Status = status
	return nil
}

// ==================== 测试脚手架 ====================

func testUser(uuid, nickname string) *model.UserInfo {
	return &model.UserInfo{
		Uuid:     uuid,
		Nickname: nickname,
		Email:    nickname + "@test.com",
		Friends:  model.FriendSet{},
	}
}

func newTestService(users ...*model.UserInfo) (*relationshipService, *fakeUserRepo, *fakeRequestRepo) {
	userRepo := newFakeUserRepo(users...)
	requestRepo := newFakeRequestRepo()
	repos := repository.NewRepositoriesWithImpl(userRepo, requestRepo)
	return NewRelationshipService(repos), userRepo, requestRepo
}

func assertCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error code %d, got nil", wantCode)
	}
	if got := errorx.GetCode(err); got != wantCode {
		t.Fatalf("want error code %d, got %d (%v)", wantCode, got, err)
	}
}

// sendAndAccept 建立 A-B 好友关系的快捷方式
func sendAndAccept(t *testing.T, svc *relationshipService, senderId, receiverId string) string {
	t.Helper()
	sent, err := svc.SendRequest(senderId, request.SendFriendRequestRequest{ReceiverId: receiverId})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if _, err := svc.RespondToRequest(receiverId, request.RespondRequestRequest{
		RequestId: sent.RequestId,
		Decision:  "accepted",
	}); err != nil {
		t.Fatalf("accept request: %v", err)
	}
	return sent.RequestId
}

// ==================== SendRequest ====================

func TestSendRequestCreatesPending(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	rsp, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{
		ReceiverId: "U_bob",
		Note:       "同班同学",
	})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if rsp.Status != model.RequestStatusPending {
		t.Fatalf("want pending status, got %d", rsp.Status)
	}
	if rsp.SenderId != "U_alice" || rsp.ReceiverId != "U_bob" {
		t.Fatalf("unexpected pair: %s -> %s", rsp.SenderId, rsp.ReceiverId)
	}
	if rsp.Note != "同班同学" {
		t.Fatalf("note lost: %q", rsp.Note)
	}
	if rsp.SenderName != "alice" || rsp.ReceiverName != "bob" {
		t.Fatalf("identity projection missing: %q / %q", rsp.SenderName, rsp.ReceiverName)
	}
}

func TestSendRequestToSelf(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"))

	_, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_alice"})
	assertCode(t, err, errorx.CodeInvalidOperation)
}

func TestSendRequestToUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"))

	_, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_ghost"})
	assertCode(t, err, errorx.CodeUserNotExist)
}

func TestSendRequestWhenAlreadyFriends(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))
	sendAndAccept(t, svc, "U_alice", "U_bob")

	_, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	assertCode(t, err, errorx.CodeConflict)
}

func TestSendRequestDuplicatePending(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	if _, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"}); err != nil {
		t.Fatalf("first send: %v", err)
	}

	// 同方向重复
	_, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	assertCode(t, err, errorx.CodeConflict)

	// 反方向同样冲突：无序用户对之间只能有一条待处理申请
	_, err = svc.SendRequest("U_bob", request.SendFriendRequestRequest{ReceiverId: "U_alice"})
	assertCode(t, err, errorx.CodeConflict)
}

// ==================== RespondToRequest ====================

func TestAcceptRequestMakesFriendsBothWays(t *testing.T) {
	svc, userRepo, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	sent, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	rsp, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: sent.RequestId,
		Decision:  "accepted",
	})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if rsp.Status != model.RequestStatusAccepted {
		t.Fatalf("want accepted status, got %d", rsp.Status)
	}

	// 对称性：双方好友集合同时生效
	alice := userRepo.users["U_alice"]
	bob := userRepo.users["U_bob"]
	if !alice.Friends.Contains("U_bob") {
		t.Fatal("bob not in alice's friends")
	}
	if !bob.Friends.Contains("U_alice") {
		t.Fatal("alice not in bob's friends")
	}
}

func TestRespondByNonReceiverForbidden(t *testing.T) {
	svc, _, _ := newTestService(
		testUser("U_alice", "alice"), testUser("U_bob", "bob"), testUser("U_carol", "carol"))

	sent, _ := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})

	// 发送方不能自己通过
	_, err := svc.RespondToRequest("U_alice", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "accepted",
	})
	assertCode(t, err, errorx.CodeForbidden)

	// 无关第三方同样被拒
	_, err = svc.RespondToRequest("U_carol", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "rejected",
	})
	assertCode(t, err, errorx.CodeForbidden)
}

func TestRespondToTerminalRequest(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))
	requestId := sendAndAccept(t, svc, "U_alice", "U_bob")

	// 终态申请不允许再处理，不论新决定是什么
	_, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: requestId, Decision: "rejected",
	})
	assertCode(t, err, errorx.CodeInvalidOperation)

	_, err = svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: requestId, Decision: "accepted",
	})
	assertCode(t, err, errorx.CodeInvalidOperation)
}

func TestRejectRequestLeavesNoFriendship(t *testing.T) {
	svc, userRepo, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	sent, _ := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	rsp, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "rejected",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rsp.Status != model.RequestStatusRejected {
		t.Fatalf("want rejected status, got %d", rsp.Status)
	}
	if userRepo.users["U_alice"].Friends.Contains("U_bob") {
		t.Fatal("rejected request must not create friendship")
	}

	// 拒绝后可以重新发起申请
	if _, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"}); err != nil {
		t.Fatalf("re-send after reject: %v", err)
	}
}

func TestRespondToUnknownRequest(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_bob", "bob"))

	_, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: "R_missing", Decision: "accepted",
	})
	assertCode(t, err, errorx.CodeNotFound)
}

// ==================== CancelRequest ====================

func TestCancelRequest(t *testing.T) {
	svc, _, requestRepo := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	sent, _ := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})

	// 接收方不能撤回
	_, err := svc.CancelRequest("U_bob", sent.RequestId)
	assertCode(t, err, errorx.CodeForbidden)

	// 发起方撤回，返回更新后的申请
	cancelled, err := svc.CancelRequest("U_alice", sent.RequestId)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != model.RequestStatusCancelled {
		t.Fatalf("want cancelled status in respond, got %d", cancelled.Status)
	}
	if got := requestRepo.byUuid[sent.RequestId].Status; got != model.RequestStatusCancelled {
		t.Fatalf("want cancelled status, got %d", got)
	}

	// 撤回后不能再处理，也不能二次撤回
	_, err = svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "accepted",
	})
	assertCode(t, err, errorx.CodeInvalidOperation)
	_, err = svc.CancelRequest("U_alice", sent.RequestId)
	assertCode(t, err, errorx.CodeInvalidOperation)

	// 撤回后可以重新发起
	if _, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"}); err != nil {
		t.Fatalf("re-send after cancel: %v", err)
	}
}

// ==================== ListRequests ====================

func TestListRequestsDirections(t *testing.T) {
	svc, _, _ := newTestService(
		testUser("U_alice", "alice"), testUser("U_bob", "bob"), testUser("U_carol", "carol"))

	// alice -> bob, carol -> alice
	if _, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SendRequest("U_carol", request.SendFriendRequestRequest{ReceiverId: "U_alice"}); err != nil {
		t.Fatal(err)
	}

	sentList, err := svc.ListRequests("U_alice", "sent")
	if err != nil {
		t.Fatalf("list sent: %v", err)
	}
	if len(sentList) != 1 || sentList[0].ReceiverId != "U_bob" {
		t.Fatalf("unexpected sent list: %+v", sentList)
	}

	receivedList, err := svc.ListRequests("U_alice", "received")
	if err != nil {
		t.Fatalf("list received: %v", err)
	}
	if len(receivedList) != 1 || receivedList[0].SenderId != "U_carol" {
		t.Fatalf("unexpected received list: %+v", receivedList)
	}

	// 非法方向
	if _, err := svc.ListRequests("U_alice", "all"); err == nil {
		t.Fatal("want error for invalid direction")
	}
}

func TestListRequestsExcludesTerminal(t *testing.T) {
	svc, _, _ := newTestService(
		testUser("U_alice", "alice"), testUser("U_bob", "bob"), testUser("U_carol", "carol"))

	sendAndAccept(t, svc, "U_alice", "U_bob")
	if _, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_carol"}); err != nil {
		t.Fatal(err)
	}

	sentList, err := svc.ListRequests("U_alice", "sent")
	if err != nil {
		t.Fatal(err)
	}
	if len(sentList) != 1 || sentList[0].ReceiverId != "U_carol" {
		t.Fatalf("terminal request leaked into pending list: %+v", sentList)
	}
}

// ==================== RemoveFriend ====================

func TestRemoveFriendBothWays(t *testing.T) {
	svc, userRepo, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))
	sendAndAccept(t, svc, "U_alice", "U_bob")

	if err := svc.RemoveFriend("U_alice", "U_bob"); err != nil {
		t.Fatalf("remove friend: %v", err)
	}
	if userRepo.users["U_alice"].Friends.Contains("U_bob") {
		t.Fatal("bob still in alice's friends")
	}
	if userRepo.users["U_bob"].Friends.Contains("U_alice") {
		t.Fatal("alice still in bob's friends")
	}

	// 再删一次：关系已不存在
	err := svc.RemoveFriend("U_alice", "U_bob")
	assertCode(t, err, errorx.CodeNotFound)

	// 删除后可以重新走申请流程
	if _, err := svc.SendRequest("U_bob", request.SendFriendRequestRequest{ReceiverId: "U_alice"}); err != nil {
		t.Fatalf("re-send after remove: %v", err)
	}
}

func TestRemoveFriendSelf(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"))
	err := svc.RemoveFriend("U_alice", "U_alice")
	assertCode(t, err, errorx.CodeInvalidOperation)
}

func TestRemoveNonFriend(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))
	err := svc.RemoveFriend("U_alice", "U_bob")
	assertCode(t, err, errorx.CodeNotFound)
}

// ==================== CheckStatus ====================

func TestCheckStatusTransitions(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	// 初始无关系
	status, err := svc.CheckStatus("U_alice", "U_bob")
	if err != nil {
		t.Fatal(err)
	}
	if status.Status != respond.RelationshipNone {
		t.Fatalf("want none, got %s", status.Status)
	}

	// 发出申请后：双方都能看到 pending，方向各自正确
	sent, _ := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	status, _ = svc.CheckStatus("U_alice", "U_bob")
	if status.Status != respond.RelationshipPending || !status.IsSender {
		t.Fatalf("sender view wrong: %+v", status)
	}
	if status.Request == nil || status.Request.RequestId != sent.RequestId {
		t.Fatalf("pending status should carry the request: %+v", status.Request)
	}
	status, _ = svc.CheckStatus("U_bob", "U_alice")
	if status.Status != respond.RelationshipPending || status.IsSender {
		t.Fatalf("receiver view wrong: %+v", status)
	}

	// 通过后：friends
	if _, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "accepted",
	}); err != nil {
		t.Fatal(err)
	}
	status, _ = svc.CheckStatus("U_alice", "U_bob")
	if status.Status != respond.RelationshipFriends {
		t.Fatalf("want friends, got %s", status.Status)
	}

	// 删除后回到 none
	if err := svc.RemoveFriend("U_bob", "U_alice"); err != nil {
		t.Fatal(err)
	}
	status, _ = svc.CheckStatus("U_alice", "U_bob")
	if status.Status != respond.RelationshipNone {
		t.Fatalf("want none after removal, got %s", status.Status)
	}
}

func TestCheckStatusSelfAndUnknown(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"))

	_, err := svc.CheckStatus("U_alice", "U_alice")
	assertCode(t, err, errorx.CodeInvalidOperation)

	_, err = svc.CheckStatus("U_alice", "U_ghost")
	assertCode(t, err, errorx.CodeUserNotExist)
}

// ==================== GetFriendList / GetFriendListOf ====================

func TestGetFriendList(t *testing.T) {
	svc, _, _ := newTestService(
		testUser("U_alice", "alice"), testUser("U_bob", "bob"), testUser("U_carol", "carol"))
	sendAndAccept(t, svc, "U_alice", "U_bob")
	sendAndAccept(t, svc, "U_carol", "U_alice")

	list, err := svc.GetFriendList("U_alice")
	if err != nil {
		t.Fatalf("friend list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 friends, got %d", len(list))
	}
	found := map[string]bool{}
	for _, f := range list {
		found[f.UserId] = true
	}
	if !found["U_bob"] || !found["U_carol"] {
		t.Fatalf("unexpected friend list: %+v", list)
	}

	// 公开查询与本人查询结果一致
	public, err := svc.GetFriendListOf("U_alice")
	if err != nil {
		t.Fatalf("public friend list: %v", err)
	}
	if len(public) != len(list) {
		t.Fatalf("public list mismatch: %d vs %d", len(public), len(list))
	}
}

func TestGetFriendListOfUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(testUser("U_alice", "alice"))
	_, err := svc.GetFriendListOf("U_ghost")
	assertCode(t, err, errorx.CodeUserNotExist)
}

// ==================== GetRequest ====================

func TestGetRequestVisibility(t *testing.T) {
	svc, _, _ := newTestService(
		testUser("U_alice", "alice"), testUser("U_bob", "bob"), testUser("U_carol", "carol"))
	requestId := sendAndAccept(t, svc, "U_alice", "U_bob")

	// 终态记录对双方仍然可见
	for _, viewer := range []string{"U_alice", "U_bob"} {
		rsp, err := svc.GetRequest(viewer, requestId)
		if err != nil {
			t.Fatalf("get request as %s: %v", viewer, err)
		}
		if rsp.Status != model.RequestStatusAccepted {
			t.Fatalf("want accepted, got %d", rsp.Status)
		}
	}

	// 第三方不可见
	_, err := svc.GetRequest("U_carol", requestId)
	assertCode(t, err, errorx.CodeForbidden)

	// 不存在的记录
	_, err = svc.GetRequest("U_alice", "R_missing")
	assertCode(t, err, errorx.CodeNotFound)
}

// ==================== 事件发布 ====================

func TestFriendEventsPublished(t *testing.T) {
	pub := mq.NewChannelPublisher()
	mq.SetEventPublisher(pub)
	defer mq.SetEventPublisher(nil)

	events := pub.(interface{ Events() <-chan *mq.FriendEvent }).Events()

	svc, _, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))

	sent, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob", Note: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
		RequestId: sent.RequestId, Decision: "accepted",
	}); err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveFriend("U_alice", "U_bob"); err != nil {
		t.Fatal(err)
	}

	wantTypes := []string{mq.EventRequestSent, mq.EventRequestAccepted, mq.EventFriendRemoved}
	for _, want := range wantTypes {
		select {
		case ev := <-events:
			if ev.Type != want {
				t.Fatalf("want event %s, got %s", want, ev.Type)
			}
			if ev.EventId == "" {
				t.Fatal("event id must not be empty")
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %s", want)
		}
	}
}

// ==================== 并发接受 ====================

// 两个协程同时通过同一条申请，只有一个应成功，
// 另一个要么报终态错误，要么因幂等 Add 不产生重复好友
func TestConcurrentAcceptKeepsSetSemantics(t *testing.T) {
	svc, userRepo, _ := newTestService(testUser("U_alice", "alice"), testUser("U_bob", "bob"))
	sent, err := svc.SendRequest("U_alice", request.SendFriendRequestRequest{ReceiverId: "U_bob"})
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.RespondToRequest("U_bob", request.RespondRequestRequest{
				RequestId: sent.RequestId, Decision: "accepted",
			})
			done <- err
		}()
	}
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			assertCode(t, err, errorx.CodeInvalidOperation)
		}
	}

	alice := userRepo.users["U_alice"]
	count := 0
	for _, id := range alice.Friends {
		if id == "U_bob" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("friend set must not contain duplicates, got %d entries", count)
	}
	if !userRepo.users["U_bob"].Friends.Contains("U_alice") {
		t.Fatal("symmetry broken")
	}
}
