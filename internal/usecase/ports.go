package usecase

import "context"

// IDの採番（本番はuuid、テストでは固定値）
type IDGenerator interface {
	NewID() string
}

// checkout完了イベント。これ以外のイベント種別は無視する。
const EventCheckoutCompleted = "checkout.session.completed"

// 決済セッションに載せる商品1行。数量は常に1。
type SessionLineItem struct {
	Name       string
	UnitAmount int64 // 最小通貨単位（100倍したもの）
}

type CreateSessionInput struct {
	LineItems  []SessionLineItem
	SuccessURL string
	CancelURL  string
	OrderID    string // session metadataに埋める。webhookで注文を特定するための鍵。
}

// webhookで受けた決済イベントをusecase向けに写し取ったもの
type PaymentEvent struct {
	Type    string
	OrderID string
	Phone   string
	//line1, line2, city, state, postal_code, country の順。無い項目は空文字。
	AddressParts []string
}

// 決済事業者（Stripe）への依存をusecaseから切り離す
type PaymentGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (string, error)
	//署名がrawBodyと一致しなければエラー
	VerifyEvent(payload []byte, sigHeader string) (PaymentEvent, error)
}
