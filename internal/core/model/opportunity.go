package model

import (
	"time"

	"github.com/rs/xid"
)

type OpportunityID string

func NewOpportunityID() OpportunityID {
	return OpportunityID(xid.New().String())
}

// Opportunity is a government contracting opportunity imported from an
// upstream search and saved by a user. Raw carries the upstream payload
// untouched.
type Opportunity struct {
	ID     OpportunityID `json:"id"`
	UserID UserID        `json:"userId"`

	SolicitationNumber string     `json:"solicitationNumber"`
	Title              string     `json:"title"`
	Agency             string     `json:"agency"`
	NoticeType         string     `json:"noticeType"`
	SetAside           string     `json:"setAside"`
	ResponseDeadline   *time.Time `json:"responseDeadline,omitempty"`
	Description        string     `json:"description"`
	Raw                string     `json:"raw,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
