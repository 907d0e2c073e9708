package models

import "gorm.io/gorm"

// ChatInteraction is the audit record for a single chatbot message.
// One row is created per inbound message; the Confirmed/Executed flags
// are flipped later only when a follow-up message resolves a pending
// confirmation. Rows are never deleted.
type ChatInteraction struct {
	gorm.Model

	SessionID            string `json:"session_id" gorm:"index;not null"`
	UserMessage          string `json:"user_message" gorm:"type:text"`
	ResponseText         string `json:"response_text" gorm:"type:text"`
	OperationKind        string `json:"operation_kind,omitempty"`
	TargetID             uint   `json:"target_id,omitempty"`
	ConfirmationRequired bool   `json:"confirmation_required" gorm:"default:false"`
	Confirmed            bool   `json:"confirmed" gorm:"default:false"`
	Executed             bool   `json:"executed" gorm:"default:false"`
}
