package types

import "time"

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}

// Proposals (durable mirror of the engine's proposal store)
type Proposal struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement:false"`
	Title        string `gorm:"size:100;not null"`
	ForumLink    string `gorm:"size:200;not null"`
	Description  string `gorm:"size:200;not null"`
	Creator      string `gorm:"size:128;index;not null"`
	CreatedAt    uint64 `gorm:"not null"` // block height
	VoteEnd      uint64 `gorm:"not null"`
	ForVotes     uint64 `gorm:"default:0"`
	AgainstVotes uint64 `gorm:"default:0"`
	Status       string `gorm:"size:16;not null"`
	UpdatedAt    time.Time
}

// Votes, one live row per (proposal, voter)
type Vote struct {
	ProposalID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Voter      string `gorm:"primaryKey;size:128"`
	Status     string `gorm:"size:16;not null"`
	Weight     uint64 `gorm:"default:0"`
	UpdatedAt  time.Time
}

// Checkpoints, append-only balance history per account
type Checkpoint struct {
	ID      uint64 `gorm:"primaryKey"`
	Address string `gorm:"index;size:128;not null"`
	Height  uint64 `gorm:"not null"`
	Balance uint64 `gorm:"not null"`
}
