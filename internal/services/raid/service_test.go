package raid

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	repoMocks "github.com/KirkDiggler/raidbot/internal/repositories/raid/mocks"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/raidbot/internal/services/messaging/mocks"
	"github.com/KirkDiggler/raidbot/internal/services/raid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDeployments = `
deployments:
  - guildId: guild-1
    guildName: Huutis
    raidChannels: ["raids"]
    persistentRaidChannels: ["ex-raids"]
    cleanChannels: ["chatter"]
    signupEmojis:
      1: "plus1:111"
      2: "plus2:222"
      3: "plus3:333"
    remoteEmojis:
      1: "remote1:444"
`

type RaidServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRenderer  *mocks.MockRenderer
	mockMessenger *mocks.MockMessenger
	registry      raidRepo.Repository
	raidService   *service
	ctx           context.Context

	deployment *config.Deployment
	standard   models.Partition
	persistent models.Partition
}

func (s *RaidServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRenderer = mocks.NewMockRenderer(s.mockCtrl)
	s.mockMessenger = mocks.NewMockMessenger(s.mockCtrl)
	s.ctx = context.Background()

	deployments, err := config.ParseDeployments([]byte(testDeployments))
	s.Require().NoError(err)
	s.deployment = deployments[0]
	s.standard = s.deployment.Partition(models.ChannelClassStandard)
	s.persistent = s.deployment.Partition(models.ChannelClassPersistent)

	registry, err := raidRepo.NewMemory(&raidRepo.Config{
		Partitions: s.deployment.Partitions(),
	})
	s.Require().NoError(err)
	s.registry = registry

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultLocale: "fi",
		Prefix:        "!",
	})
	s.Require().NoError(err)

	s.raidService, err = New(&Config{
		Deployments: deployments,
		Prefixes:    []string{"!", "?"},
		Registry:    s.registry,
		Renderer:    s.mockRenderer,
		Messenger:   s.mockMessenger,
		Messaging:   messagingService,
	})
	s.Require().NoError(err)
}

func (s *RaidServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRaidServiceSuite(t *testing.T) {
	suite.Run(t, new(RaidServiceTestSuite))
}

func (s *RaidServiceTestSuite) command(messageID, content string) TextCommand {
	return TextCommand{
		GuildID:   "guild-1",
		ChannelID: "raids",
		MessageID: messageID,
		AuthorID:  "author-1",
		Content:   content,
	}
}

// expectCreate sets up the renderer calls of a successful raid creation
func (s *RaidServiceTestSuite) expectCreate(commandID, raidMessageID string) models.Handle {
	handle := models.Handle{ChannelID: "raids", MessageID: raidMessageID}

	s.mockRenderer.EXPECT().
		DeleteMessage(s.ctx, models.Handle{ChannelID: "raids", MessageID: commandID}).
		Return(nil)
	s.mockRenderer.EXPECT().
		SendRaid(s.ctx, "raids", gomock.Any(), "fi").
		Return(handle, nil)
	s.mockRenderer.EXPECT().
		AddReactions(s.ctx, handle, s.deployment.Reactions()).
		Return(nil)

	return handle
}

func (s *RaidServiceTestSuite) stored(p models.Partition, handle models.Handle) *models.Raid {
	raid, err := s.registry.GetRaid(s.ctx, &raidRepo.GetRaidInput{Partition: p, Handle: handle})
	s.Require().NoError(err)
	return raid
}

func (s *RaidServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRegistry)

	_, err = New(&Config{Registry: s.registry})
	s.ErrorIs(err, ErrNilRenderer)

	_, err = New(&Config{Registry: s.registry, Renderer: s.mockRenderer})
	s.ErrorIs(err, ErrNilMessenger)

	_, err = New(&Config{Registry: s.registry, Renderer: s.mockRenderer, Messenger: s.mockMessenger})
	s.ErrorIs(err, ErrNilMessaging)

	_, err = New(&Config{
		Registry:  s.registry,
		Renderer:  s.mockRenderer,
		Messenger: s.mockMessenger,
		Messaging: s.raidService.messaging,
	})
	s.ErrorIs(err, ErrNoDeployments)
}

func (s *RaidServiceTestSuite) TestDispatchRejectsMalformedEvents() {
	_, err := s.raidService.Dispatch(s.ctx, nil)
	s.ErrorIs(err, ErrMalformedEvent)

	_, err = s.raidService.Dispatch(s.ctx, TextCommand{ChannelID: "raids", MessageID: "m", AuthorID: "a"})
	s.ErrorIs(err, ErrMalformedEvent)

	_, err = s.raidService.Dispatch(s.ctx, &ReactionAdd{GuildID: "guild-1", ChannelID: "raids", MessageID: "m", UserID: "u"})
	s.ErrorIs(err, ErrMalformedEvent)

	_, err = s.raidService.Dispatch(s.ctx, StructuredCommand{GuildID: "guild-1", ChannelID: "raids", UserID: "u", Name: "dance"})
	s.ErrorIs(err, ErrMalformedEvent)
}

func (s *RaidServiceTestSuite) TestCreateClaimRelease() {
	handle := s.expectCreate("cmd-1", "raid-1")

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo  Central   Park "))
	s.Require().NoError(err)
	s.True(out.Handled)
	s.Require().NotNil(out.Raid)
	s.Equal("18:00", out.Raid.Time)
	s.Equal("Mewtwo", out.Raid.Boss)
	s.Equal("Central Park", out.Raid.Location)
	s.Equal(handle, out.Raid.Handle)
	s.Empty(out.Raid.Raiders)

	s.mockMessenger.EXPECT().
		ResolveDisplayName(s.ctx, "guild-1", "user-1").
		Return("Ash", nil)
	s.mockRenderer.EXPECT().
		EditRaid(s.ctx, gomock.Any(), "fi").
		DoAndReturn(func(_ context.Context, raid *models.Raid, _ string) error {
			s.Len(raid.Raiders, 2)
			return nil
		})

	out, err = s.raidService.Dispatch(s.ctx, ReactionAdd{
		GuildID:   "guild-1",
		ChannelID: "raids",
		MessageID: "raid-1",
		UserID:    "user-1",
		Emoji:     "222",
	})
	s.Require().NoError(err)
	s.True(out.Handled)
	s.Equal([]models.Raider{
		{Name: "Ash", UserID: "user-1"},
		{Name: "Ash", UserID: "user-1"},
	}, out.Raid.Raiders)

	s.mockRenderer.EXPECT().
		EditRaid(s.ctx, gomock.Any(), "fi").
		Return(nil)

	out, err = s.raidService.Dispatch(s.ctx, ReactionRemove{
		GuildID:   "guild-1",
		ChannelID: "raids",
		MessageID: "raid-1",
		UserID:    "user-1",
		Emoji:     "111",
	})
	s.Require().NoError(err)
	s.Equal([]models.Raider{{Name: "Ash", UserID: "user-1"}}, out.Raid.Raiders)
	s.Len(s.stored(s.standard, handle).Raiders, 1)
}

func (s *RaidServiceTestSuite) TestRemoteClaimUsesEventName() {
	handle := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	s.mockRenderer.EXPECT().EditRaid(s.ctx, gomock.Any(), "fi").Return(nil)

	out, err := s.raidService.Dispatch(s.ctx, ReactionAdd{
		GuildID:     "guild-1",
		ChannelID:   "raids",
		MessageID:   "raid-1",
		UserID:      "user-1",
		Emoji:       "remote1:444",
		DisplayName: "Misty",
	})
	s.Require().NoError(err)
	s.Equal([]models.Raider{{Name: "Misty", UserID: "user-1", Remote: true}}, out.Raid.Raiders)
	s.Equal(out.Raid.Raiders, s.stored(s.standard, handle).Raiders)
}

func (s *RaidServiceTestSuite) TestUnresolvedNameFallsBack() {
	s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	s.mockMessenger.EXPECT().
		ResolveDisplayName(s.ctx, "guild-1", "user-1").
		Return("", errors.New("member left"))
	s.mockRenderer.EXPECT().EditRaid(s.ctx, gomock.Any(), "fi").Return(nil)

	out, err := s.raidService.Dispatch(s.ctx, ReactionAdd{
		GuildID:   "guild-1",
		ChannelID: "raids",
		MessageID: "raid-1",
		UserID:    "user-1",
		Emoji:     "111",
	})
	s.Require().NoError(err)
	s.Equal([]models.Raider{{Name: "Unknown", UserID: "user-1"}}, out.Raid.Raiders)
}

func (s *RaidServiceTestSuite) TestCreateWithTooFewTokensSendsInstructions() {
	s.mockRenderer.EXPECT().
		DeleteMessage(s.ctx, models.Handle{ChannelID: "raids", MessageID: "cmd-1"}).
		Return(nil)
	s.mockMessenger.EXPECT().
		DirectMessage(s.ctx, "author-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content string) error {
			s.Contains(content, "!raid 18:00 Mewtwo")
			return nil
		})

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo"))
	s.Require().NoError(err)
	s.True(out.Handled)
	s.Nil(out.Raid)

	count, err := s.registry.CountRaids(s.ctx, &raidRepo.CountRaidsInput{Partition: s.standard})
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RaidServiceTestSuite) TestInstructionDeliveryFailureIsReported() {
	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(errors.New("gone"))
	s.mockMessenger.EXPECT().
		DirectMessage(s.ctx, "author-1", gomock.Any()).
		Return(errors.New("dms closed"))

	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!aika 18:00"))
	s.ErrorIs(err, ErrTransportFailure)
}

func (s *RaidServiceTestSuite) TestHelpSendsDirectMessage() {
	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().
		DirectMessage(s.ctx, "author-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content string) error {
			s.Contains(content, "!raid AIKA BOSSI PAIKKA")
			return nil
		})

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "?help"))
	s.Require().NoError(err)
	s.True(out.Handled)
}

func (s *RaidServiceTestSuite) TestCreateReplacesRaidAtSameLocation() {
	first := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Central Park"))
	s.Require().NoError(err)

	second := models.Handle{ChannelID: "raids", MessageID: "raid-2"}
	s.mockRenderer.EXPECT().
		DeleteMessage(s.ctx, models.Handle{ChannelID: "raids", MessageID: "cmd-2"}).
		Return(nil)
	s.mockRenderer.EXPECT().SendRaid(s.ctx, "raids", gomock.Any(), "fi").Return(second, nil)
	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, first).Return(errors.New("already deleted"))
	s.mockRenderer.EXPECT().AddReactions(s.ctx, second, gomock.Any()).Return(nil)

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-2", "!raid 19:00 Mew Central Park"))
	s.Require().NoError(err)
	s.Equal(second, out.Raid.Handle)

	found, err := s.registry.FindByLocation(s.ctx, &raidRepo.FindByLocationInput{
		Partition: s.standard,
		Location:  "Central Park",
	})
	s.Require().NoError(err)
	s.Equal(second, found.Handle)
	s.Equal("Mew", found.Boss)

	count, err := s.registry.CountRaids(s.ctx, &raidRepo.CountRaidsInput{Partition: s.standard})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *RaidServiceTestSuite) TestCreateRenderFailureRegistersNothing() {
	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(nil)
	s.mockRenderer.EXPECT().
		SendRaid(s.ctx, "raids", gomock.Any(), "fi").
		Return(models.Handle{}, errors.New("missing permissions"))

	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.ErrorIs(err, ErrRenderFailure)

	count, err := s.registry.CountRaids(s.ctx, &raidRepo.CountRaidsInput{Partition: s.standard})
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RaidServiceTestSuite) TestInterleavedClaimsAreAllKept() {
	handle := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	const users = 25
	s.mockRenderer.EXPECT().EditRaid(gomock.Any(), gomock.Any(), "fi").Return(nil).Times(users)

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.raidService.Dispatch(s.ctx, ReactionAdd{
				GuildID:     "guild-1",
				ChannelID:   "raids",
				MessageID:   "raid-1",
				UserID:      fmt.Sprintf("user-%d", i),
				Emoji:       "333",
				DisplayName: fmt.Sprintf("Trainer %d", i),
			})
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	s.Len(s.stored(s.standard, handle).Raiders, users*3)
}

func (s *RaidServiceTestSuite) TestReactionsIgnored() {
	s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	events := map[string]Event{
		"bot":           ReactionAdd{GuildID: "guild-1", ChannelID: "raids", MessageID: "raid-1", UserID: "bot", Emoji: "111", UserIsBot: true},
		"unknown emoji": ReactionAdd{GuildID: "guild-1", ChannelID: "raids", MessageID: "raid-1", UserID: "u", Emoji: "🎉"},
		"no raid":       ReactionAdd{GuildID: "guild-1", ChannelID: "raids", MessageID: "other", UserID: "u", Emoji: "111"},
		"other channel": ReactionRemove{GuildID: "guild-1", ChannelID: "chatter", MessageID: "raid-1", UserID: "u", Emoji: "111"},
		"other guild":   ReactionRemove{GuildID: "guild-2", ChannelID: "raids", MessageID: "raid-1", UserID: "u", Emoji: "111"},
	}

	for name, event := range events {
		s.Run(name, func() {
			out, err := s.raidService.Dispatch(s.ctx, event)
			s.Require().NoError(err)
			s.False(out.Handled)
		})
	}
}

func (s *RaidServiceTestSuite) TestReactionRenderFailureKeepsClaim() {
	handle := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	s.mockRenderer.EXPECT().EditRaid(s.ctx, gomock.Any(), "fi").Return(errors.New("rate limited"))

	_, err = s.raidService.Dispatch(s.ctx, ReactionAdd{
		GuildID:     "guild-1",
		ChannelID:   "raids",
		MessageID:   "raid-1",
		UserID:      "user-1",
		Emoji:       "111",
		DisplayName: "Ash",
	})
	s.ErrorIs(err, ErrRenderFailure)
	s.Len(s.stored(s.standard, handle).Raiders, 1)
}

func (s *RaidServiceTestSuite) TestTextCommandsIgnored() {
	events := map[string]TextCommand{
		"plain text":    s.command("m-1", "raid tonight?"),
		"unknown":       s.command("m-2", "!dance"),
		"empty":         s.command("m-3", "   "),
		"other channel": {GuildID: "guild-1", ChannelID: "chatter", MessageID: "m-4", AuthorID: "a", Content: "!raid 1 2 3"},
		"bot":           {GuildID: "guild-1", ChannelID: "raids", MessageID: "m-5", AuthorID: "a", AuthorIsBot: true, Content: "!raid 1 2 3"},
	}

	for name, event := range events {
		s.Run(name, func() {
			out, err := s.raidService.Dispatch(s.ctx, event)
			s.Require().NoError(err)
			s.False(out.Handled)
		})
	}
}

func (s *RaidServiceTestSuite) TestTimeAndBossCommandsEditRaid() {
	handle := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Central Park"))
	s.Require().NoError(err)

	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(nil).Times(2)
	s.mockRenderer.EXPECT().EditRaid(s.ctx, gomock.Any(), "fi").Return(nil).Times(2)

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-2", "!aika 18:30 Central Park"))
	s.Require().NoError(err)
	s.Equal("18:30", out.Raid.Time)

	out, err = s.raidService.Dispatch(s.ctx, s.command("cmd-3", "!boss Mew Central Park"))
	s.Require().NoError(err)
	s.Equal("Mew", out.Raid.Boss)

	stored := s.stored(s.standard, handle)
	s.Equal("18:30", stored.Time)
	s.Equal("Mew", stored.Boss)
	s.Equal("Central Park", stored.Location)
}

func (s *RaidServiceTestSuite) TestTimeCommandLookupMiss() {
	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(nil)

	out, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!aika 18:30 Nowhere"))
	s.Require().NoError(err)
	s.True(out.Handled)
	s.Nil(out.Raid)
}

func (s *RaidServiceTestSuite) TestStructuredCommandCreatesRaid() {
	handle := models.Handle{ChannelID: "ex-raids", MessageID: "raid-1"}
	s.mockRenderer.EXPECT().SendRaid(s.ctx, "ex-raids", gomock.Any(), "fi").Return(handle, nil)
	s.mockRenderer.EXPECT().AddReactions(s.ctx, handle, gomock.Any()).Return(nil)

	out, err := s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "ex-raids",
		UserID:    "user-1",
		Name:      CommandRaid,
		Options: map[string]string{
			OptionTime:     " 18:00 ",
			OptionBoss:     "Mewtwo",
			OptionLocation: " Central Park",
		},
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyCreated, out.Reply)
	s.Equal("Ok!", out.ReplyMessage)
	s.Equal("Central Park", s.stored(s.persistent, handle).Location)
}

func (s *RaidServiceTestSuite) TestStructuredCommandReplies() {
	out, err := s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "chatter",
		UserID:    "user-1",
		Name:      CommandRaid,
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyUnavailable, out.Reply)
	s.NotEmpty(out.ReplyMessage)

	out, err = s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "raids",
		UserID:    "user-1",
		Name:      CommandRaid,
		Options:   map[string]string{OptionTime: "18:00", OptionBoss: "  ", OptionLocation: "Park"},
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyMalformed, out.Reply)

	out, err = s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "raids",
		UserID:    "user-1",
		Name:      CommandBoss,
		Options:   map[string]string{OptionBoss: "Mew", OptionLocation: "Nowhere"},
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyNotFound, out.Reply)
	s.Equal("En löytänyt raidia jota muokata :(", out.ReplyMessage)
}

func (s *RaidServiceTestSuite) TestEditFailureEvictsRaid() {
	handle := s.expectCreate("cmd-1", "raid-1")
	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!raid 18:00 Mewtwo Park"))
	s.Require().NoError(err)

	s.mockRenderer.EXPECT().EditRaid(s.ctx, gomock.Any(), "fi").Return(errors.New("unknown message"))

	out, err := s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "raids",
		UserID:    "user-1",
		Name:      CommandTime,
		Options:   map[string]string{OptionTime: "19:00", OptionLocation: "Park"},
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyEditFailed, out.Reply)

	_, err = s.registry.GetRaid(s.ctx, &raidRepo.GetRaidInput{Partition: s.standard, Handle: handle})
	s.ErrorIs(err, raidRepo.ErrRaidNotFound)
}

func (s *RaidServiceTestSuite) TestRegistryFailureRepliesMalformed() {
	registry := repoMocks.NewMockRepository(s.mockCtrl)
	s.raidService.registry = registry

	registry.EXPECT().
		FindByLocation(s.ctx, &raidRepo.FindByLocationInput{Partition: s.standard, Location: "Park"}).
		Return(nil, errors.New("registry closed"))

	out, err := s.raidService.Dispatch(s.ctx, StructuredCommand{
		GuildID:   "guild-1",
		ChannelID: "raids",
		UserID:    "user-1",
		Name:      CommandTime,
		Options:   map[string]string{OptionTime: "19:00", OptionLocation: "Park"},
	})
	s.Require().NoError(err)
	s.Equal(messaging.ReplyMalformed, out.Reply)
}

func (s *RaidServiceTestSuite) TestReactionRendersNewestRoster() {
	registry := repoMocks.NewMockRepository(s.mockCtrl)
	s.raidService.registry = registry

	handle := models.Handle{ChannelID: "raids", MessageID: "raid-1"}
	get := &raidRepo.GetRaidInput{Partition: s.standard, Handle: handle}
	base := models.Raid{Time: "18:00", Boss: "Mewtwo", Location: "Park", Handle: handle}

	own := base
	own.Raiders = []models.Raider{{Name: "Ash", UserID: "user-1"}}

	newest := base
	newest.Raiders = []models.Raider{
		{Name: "Ash", UserID: "user-1"},
		{Name: "Misty", UserID: "user-2"},
	}

	gomock.InOrder(
		registry.EXPECT().GetRaid(s.ctx, get).Return(&base, nil),
		registry.EXPECT().UpdateRaid(s.ctx, gomock.Any()).Return(&own, nil),
		registry.EXPECT().GetRaid(s.ctx, get).Return(&newest, nil),
		s.mockRenderer.EXPECT().EditRaid(s.ctx, &newest, "fi").Return(nil),
	)

	out, err := s.raidService.Dispatch(s.ctx, ReactionAdd{
		GuildID:     "guild-1",
		ChannelID:   "raids",
		MessageID:   "raid-1",
		UserID:      "user-1",
		Emoji:       "111",
		DisplayName: "Ash",
	})
	s.Require().NoError(err)
	s.Equal(own.Raiders, out.Raid.Raiders)
}

func (s *RaidServiceTestSuite) TestReactionSkipsRenderOfEvictedRaid() {
	registry := repoMocks.NewMockRepository(s.mockCtrl)
	s.raidService.registry = registry

	handle := models.Handle{ChannelID: "raids", MessageID: "raid-1"}
	raid := &models.Raid{Time: "18:00", Boss: "Mewtwo", Location: "Park", Handle: handle}

	gomock.InOrder(
		registry.EXPECT().GetRaid(s.ctx, gomock.Any()).Return(raid, nil),
		registry.EXPECT().UpdateRaid(s.ctx, gomock.Any()).Return(raid, nil),
		registry.EXPECT().GetRaid(s.ctx, gomock.Any()).Return(nil, raidRepo.ErrRaidNotFound),
	)

	out, err := s.raidService.Dispatch(s.ctx, ReactionRemove{
		GuildID:   "guild-1",
		ChannelID: "raids",
		MessageID: "raid-1",
		UserID:    "user-1",
		Emoji:     "111",
	})
	s.Require().NoError(err)
	s.True(out.Handled)
}

func (s *RaidServiceTestSuite) TestMessagingFailureIsReturned() {
	messagingService := messagingMocks.NewMockService(s.mockCtrl)
	s.raidService.messaging = messagingService

	s.mockRenderer.EXPECT().DeleteMessage(s.ctx, gomock.Any()).Return(nil)
	messagingService.EXPECT().
		GetHelpMessage(s.ctx, &messaging.GetHelpMessageInput{Locale: "fi"}).
		Return(nil, messaging.ErrNilInput)

	_, err := s.raidService.Dispatch(s.ctx, s.command("cmd-1", "!help"))
	s.ErrorIs(err, messaging.ErrNilInput)
}

func TestParseCommand(t *testing.T) {
	prefixes := []string{"!", "raid:"}

	cases := []struct {
		content string
		name    string
		payload []string
		ok      bool
	}{
		{"!raid 18:00 Mewtwo Central Park", CommandRaid, []string{"18:00", "Mewtwo", "Central", "Park"}, true},
		{"raid:aika 18:00\tPark", CommandTime, []string{"18:00", "Park"}, true},
		{"  !boss  ", CommandBoss, []string{}, true},
		{"!help", CommandHelp, []string{}, true},
		{"!raids 18:00", "", nil, false},
		{"raid 18:00 Mewtwo Park", "", nil, false},
		{"", "", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.content, func(t *testing.T) {
			name, payload, ok := parseCommand(prefixes, tc.content)
			if ok != tc.ok || name != tc.name || fmt.Sprint(payload) != fmt.Sprint(tc.payload) {
				t.Errorf("parseCommand(%q) = %q, %v, %v", tc.content, name, payload, ok)
			}
		})
	}
}
