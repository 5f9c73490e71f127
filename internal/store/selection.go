package store

// SelectServer makes serverID the current server and drops any DM selection.
// Unknown ids are accepted; projections over an unknown current server simply
// come back empty.
func (s *Store) SelectServer(serverID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.currentServerID = serverID
	s.currentDMID = ""
	s.sugar.Debugf("Selected server [%s]", serverID)
}

// SelectChannel makes channelID the current channel, but only if it belongs
// to the current server. A channel from another server leaves the selection
// untouched, so a stale click can never leak a foreign channel into view.
func (s *Store) SelectChannel(channelID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	srv := s.findServer(s.currentServerID)
	if srv == nil || s.findChannel(srv, channelID) == nil {
		s.sugar.Debugf("Rejected selection of channel [%s] outside server [%s]", channelID, s.currentServerID)
		return
	}

	s.currentChannelID = channelID
	s.currentDMID = ""
}

// SelectDirectMessage makes dmID the current DM thread and drops any channel
// selection. models.FriendsListID selects the friends-list pseudo-thread.
// Like SelectServer, unknown ids fail soft.
func (s *Store) SelectDirectMessage(dmID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.currentDMID = dmID
	s.currentChannelID = ""
	s.sugar.Debugf("Selected DM thread [%s]", dmID)
}

// MarkChannelRead zeroes the unread counter on a server channel. DM unread
// counters are deliberately untouched; they are cleared by their own flow.
func (s *Store) MarkChannelRead(channelID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.servers {
		if ch := s.findChannel(&s.servers[i], channelID); ch != nil {
			ch.UnreadCount = 0
			return
		}
	}
}
