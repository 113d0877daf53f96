package domain

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 254

// Message is a text post authored by an Account.
type Message struct {
	ID              int64  `db:"message_id"`
	PostedBy        int64  `db:"posted_by"`
	Text            string `db:"message_text"`
	TimePostedEpoch int64  `db:"time_posted_epoch"`
}
