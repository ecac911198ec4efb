package utils

import "strconv"

// Preference keys for the durable session state.
const (
	keyIsLoggedIn                = "is_log_in"
	keyUserID                    = "user_id"
	keyHasCompletedQuestionnaire = "has_completed_questionnaire"
)

// SessionManager owns the device's login state: LoggedOut, or LoggedIn with
// a current user id and a durable questionnaire-complete flag. It is
// constructed once and passed to whoever needs it; login and logout are the
// only writers. There is no timeout or expiry.
type SessionManager struct {
	prefs *PrefStore
}

func NewSessionManager(prefs *PrefStore) *SessionManager {
	return &SessionManager{prefs: prefs}
}

// Login records userID as the current user. The credential check is the
// caller's responsibility.
func (m *SessionManager) Login(userID int) error {
	if err := m.prefs.Set(keyUserID, strconv.Itoa(userID)); err != nil {
		return err
	}
	return m.prefs.Set(keyIsLoggedIn, true)
}

// Logout wipes the whole session, including the questionnaire flag: the
// next login starts from the questionnaire gate again.
func (m *SessionManager) Logout() error {
	return m.prefs.Remove(keyIsLoggedIn, keyUserID, keyHasCompletedQuestionnaire)
}

func (m *SessionManager) IsLoggedIn() bool {
	return m.prefs.GetBool(keyIsLoggedIn)
}

// CurrentUserID returns the logged-in user's id, or false when logged out.
func (m *SessionManager) CurrentUserID() (int, bool) {
	if !m.IsLoggedIn() {
		return 0, false
	}
	raw, ok := m.prefs.GetString(keyUserID)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (m *SessionManager) CompleteQuestionnaire() error {
	return m.prefs.Set(keyHasCompletedQuestionnaire, true)
}

func (m *SessionManager) HasCompletedQuestionnaire() bool {
	return m.prefs.GetBool(keyHasCompletedQuestionnaire)
}
