// Package mockdata fabricates the client's starting dataset: a user pool,
// three servers with categories, channels, roles and members drawn from the
// pool, seeded message logs, and a few DM threads. The shape is fixed, the
// values are random. The output is the only data ever handed to the store, so
// Generate must produce a snapshot that passes models.Snapshot.Validate.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"chatapp-client/internal/models"

	"github.com/google/uuid"
)

var usernames = []string{
	"alex_dev", "maria_ui", "dmitri_code", "elena_design", "andre_tech",
	"lana_art", "igor_games", "nat_music", "vlad_photo", "irene_video",
	"serge_stream", "julia_draw", "sasha_code", "kate_ui", "misha_dev",
	"olga_design", "pavel_tech", "anna_creative", "roman_gaming", "vika_art",
	"kostya_dev", "luba_design", "max_stream", "tanya_music", "valera_photo",
}

var messageTemplates = []string{
	"Hey everyone! How's it going?",
	"Can anyone help me with this task?",
	"Great work on the last release!",
	"Don't forget the meeting at 15:00",
	"Found an interesting article, sharing the link",
	"Coffee break in 10 minutes, who's in?",
	"Please take a look at my PR",
	"We're demoing the new feature tomorrow",
	"Anyone tried the new game yet? Thoughts?",
	"Have a good weekend! See you Monday",
	"Need a hand with this button design",
	"Code looks great, approving!",
	"Can't connect to the server, anyone else?",
	"Finished the sprint early, nice!",
	"Has anyone seen the new update?",
	"🎉 Congrats on shipping!",
	"Sharing a screenshot of the progress",
	"Question about the API, can we discuss?",
	"Planning a hackathon for next weekend",
	"Who wants to pair on a pet project?",
}

var reactionEmojis = []string{"👍", "❤️", "😄", "🎉", "👀"}

var statuses = []models.UserStatus{
	models.StatusOnline, models.StatusIdle, models.StatusDnd, models.StatusOffline,
}

type roleSpec struct {
	name  string
	color string
}

type categorySpec struct {
	name     string
	channels []string
	voice    bool
}

type generator struct {
	rng *rand.Rand
	now time.Time
}

// Generate builds a complete snapshot. The same seed reproduces the same
// random draws (ids stay unique but differ run to run); seed 0 picks one.
func Generate(seed uint64) *models.Snapshot {
	if seed == 0 {
		seed = rand.Uint64()
	}
	g := &generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now(),
	}

	users := g.users(len(usernames))
	currentUser := users[0]

	servers := []models.Server{
		g.server("React Developers", "⚛️", users[:15],
			[]categorySpec{
				{name: "INFO", channels: []string{"announcements", "rules", "news"}},
				{name: "DEVELOPMENT", channels: []string{"general", "code-review", "bugs", "features"}},
				{name: "VOICE", channels: []string{"hangout", "calls", "streams"}, voice: true},
			},
			[]roleSpec{{"Admin", "#ff0000"}, {"Moderator", "#00ff00"}, {"Developer", "#0000ff"}},
		),
		g.server("Design Community", "🎨", ownerFirst(users[:12], 2),
			[]categorySpec{
				{name: "DESIGN", channels: []string{"general", "ui-kit", "mockups", "icons"}},
				{name: "FEEDBACK", channels: []string{"feedback", "ideas"}},
			},
			[]roleSpec{{"Lead", "#9b59b6"}, {"Designer", "#e91e63"}},
		),
		g.server("Gamers", "🎮", append(slices.Clone(users[10:]), currentUser),
			[]categorySpec{
				{name: "GAMES", channels: []string{"general", "looking-for-group", "streams"}},
				{name: "VOICE", channels: []string{"games", "chill"}, voice: true},
			},
			[]roleSpec{{"Pro Gamer", "#f1c40f"}, {"Streamer", "#9b59b6"}},
		),
	}

	messages := make(map[models.ConversationID][]models.Message)
	for i := range servers {
		srv := &servers[i]
		for _, cat := range srv.Categories {
			for _, ch := range cat.Channels {
				if ch.Type != models.ChannelText {
					continue
				}
				conv := models.ChannelConversation(ch.ID)
				messages[conv] = g.log(conv, srv.Members, 15+g.rng.IntN(11))
			}
		}
	}

	friends := users[1:8]
	dms := []models.DirectMessage{
		{ID: uuid.NewString(), Participants: []string{currentUser.ID, users[1].ID}, UnreadCount: 3},
		{ID: uuid.NewString(), Participants: []string{currentUser.ID, users[2].ID}},
		{ID: uuid.NewString(), Participants: []string{currentUser.ID, users[3].ID, users[4].ID}, UnreadCount: 1},
	}
	for _, dm := range dms {
		var participants []models.User
		for _, u := range users {
			for _, id := range dm.Participants {
				if u.ID == id {
					participants = append(participants, u)
				}
			}
		}
		conv := models.DMConversation(dm.ID)
		messages[conv] = g.log(conv, participants, 10+g.rng.IntN(6))
	}

	return &models.Snapshot{
		CurrentUser:    currentUser,
		Servers:        servers,
		DirectMessages: dms,
		Messages:       messages,
		Friends:        friends,
	}
}

// ownerFirst reorders a member slice so the intended owner leads it; the
// server constructor crowns whoever comes first.
func ownerFirst(members []models.User, owner int) []models.User {
	out := make([]models.User, 0, len(members))
	out = append(out, members[owner])
	out = append(out, members[:owner]...)
	return append(out, members[owner+1:]...)
}

func (g *generator) users(count int) []models.User {
	users := make([]models.User, count)
	for i := range users {
		name := usernames[i%len(usernames)]
		users[i] = models.User{
			ID:          uuid.NewString(),
			Username:    name,
			DisplayName: displayName(name),
			Avatar:      fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", i%8+1),
			Status:      statuses[g.rng.IntN(len(statuses))],
			JoinedAt:    g.now.Add(-time.Duration(g.rng.Int64N(int64(365 * 24 * time.Hour)))),
		}
	}
	return users
}

func displayName(username string) string {
	name, _, _ := strings.Cut(username, "_")
	if name == "" {
		return "anon"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// server assembles one server. The first members get the roles, in order;
// everyone else is roleless. The owner is the first member.
func (g *generator) server(name, icon string, members []models.User, categorySpecs []categorySpec, roleSpecs []roleSpec) models.Server {
	roles := make([]models.Role, len(roleSpecs))
	for i, spec := range roleSpecs {
		roles[i] = models.Role{
			ID:          uuid.NewString(),
			Name:        spec.name,
			Color:       spec.color,
			Permissions: []string{"member"},
		}
	}

	// The roster embeds per-server copies of the pool users, so per-server
	// role assignments never leak into another server's member list.
	roster := make([]models.User, len(members))
	copy(roster, members)
	for i := range roster {
		roster[i].RoleIDs = nil
		if i < len(roles) {
			roster[i].RoleIDs = []string{roles[i].ID}
		}
	}

	categories := make([]models.Category, len(categorySpecs))
	for i, spec := range categorySpecs {
		chType := models.ChannelText
		if spec.voice {
			chType = models.ChannelVoice
		}

		channels := make([]models.Channel, len(spec.channels))
		for pos, chName := range spec.channels {
			channels[pos] = models.Channel{
				ID:       uuid.NewString(),
				Name:     chName,
				Type:     chType,
				Position: pos,
			}
			if chType == models.ChannelText && g.rng.IntN(2) == 0 {
				channels[pos].UnreadCount = 1 + g.rng.IntN(25)
			}
		}
		categories[i] = models.Category{ID: uuid.NewString(), Name: spec.name, Channels: channels}
	}

	return models.Server{
		ID:          uuid.NewString(),
		Name:        name,
		Icon:        icon,
		OwnerID:     roster[0].ID,
		MemberCount: len(roster),
		Categories:  categories,
		Members:     roster,
		Roles:       roles,
	}
}

// log synthesizes a message history: one message a minute with a little
// jitter, newest at the tail ending near now. The jitter stays under the
// minute step, so timestamps never run backwards.
func (g *generator) log(conv models.ConversationID, authors []models.User, count int) []models.Message {
	log := make([]models.Message, count)
	for i := range log {
		author := authors[g.rng.IntN(len(authors))]
		ts := g.now.
			Add(-time.Duration(count-i) * time.Minute).
			Add(time.Duration(g.rng.Int64N(int64(30 * time.Second))))

		msg := models.Message{
			ID:           uuid.NewString(),
			Conversation: conv,
			AuthorID:     author.ID,
			Content:      messageTemplates[g.rng.IntN(len(messageTemplates))],
			Timestamp:    ts,
			Type:         models.MessageDefault,
			Pinned:       g.rng.IntN(10) == 0,
		}
		if g.rng.IntN(10) < 3 {
			msg.Reactions = []models.Reaction{g.reaction(authors)}
		}
		log[i] = msg
	}
	return log
}

func (g *generator) reaction(users []models.User) models.Reaction {
	reactors := make(map[string]bool)
	for range 1 + g.rng.IntN(3) {
		reactors[users[g.rng.IntN(len(users))].ID] = true
	}
	ids := make([]string, 0, len(reactors))
	for id := range reactors {
		ids = append(ids, id)
	}
	return models.Reaction{
		Emoji: reactionEmojis[g.rng.IntN(len(reactionEmojis))],
		Count: len(ids),
		Users: ids,
	}
}
