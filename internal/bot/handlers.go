package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/assessment"
	"github.com/linguatrack/backend/internal/service/review"
)

const todayListLimit = 5

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.cmdStart(ctx, msg)
		case "today":
			b.cmdToday(ctx, msg)
		case "review":
			b.cmdReview(ctx, msg)
		case "test":
			b.cmdTest(ctx, msg)
		case "cancel":
			b.cmdCancel(ctx, msg)
		default:
			b.reply(msg.Chat.ID, "Unknown command. Try /today, /review, /test, or /cancel.")
		}
		return
	}

	// Plain text mid-quiz is a typing answer.
	b.handleTypedAnswer(ctx, msg)
}

func (b *Bot) cmdStart(ctx context.Context, msg *tgbotapi.Message) {
	_, user, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			b.reply(msg.Chat.ID, fmt.Sprintf(
				"This chat is not linked to an account yet.\nYour Telegram ID is %d. Link it in the app settings, then come back and try /today.",
				msg.From.ID))
			return
		}
		b.log.Error("start command", "error", err)
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(
		"Hi %s! I will remind you about words due for review.\n\n/today shows what is due\n/review grades cards one by one\n/test runs a quick quiz",
		user.Username))
}

func (b *Bot) cmdToday(ctx context.Context, msg *tgbotapi.Message) {
	ctx, _, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "today command", err)
		return
	}

	due, err := b.reviews.DueCards(ctx, todayListLimit)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "today command", err)
		return
	}
	if len(due) == 0 {
		b.reply(msg.Chat.ID, "Nothing to review today. Well done!")
		return
	}

	total, err := b.reviews.CountDue(ctx)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "today command", err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %d word(s) due today:\n\n", total)
	for _, d := range due {
		fmt.Fprintf(&sb, "%s %s — %s\n", levelMarker(d.Card.Level), d.Card.Word, d.Card.Translation)
	}
	if total > len(due) {
		fmt.Fprintf(&sb, "\n...and %d more.", total-len(due))
	}
	sb.WriteString("\n\nUse /review to grade them or /test for a quiz.")

	b.reply(msg.Chat.ID, sb.String())
}

// cmdReview shows the next due card with a quality keyboard.
func (b *Bot) cmdReview(ctx context.Context, msg *tgbotapi.Message) {
	ctx, _, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "review command", err)
		return
	}

	due, err := b.reviews.DueCards(ctx, 1)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "review command", err)
		return
	}
	if len(due) == 0 {
		b.reply(msg.Chat.ID, "Nothing to review right now.")
		return
	}

	b.sendReviewCard(msg.Chat.ID, due[0].Card)
}

func (b *Bot) sendReviewCard(chatID int64, card domain.Card) {
	text := fmt.Sprintf("%s %s — %s", levelMarker(card.Level), card.Word, card.Translation)
	if card.Example != "" {
		text += "\n\n" + card.Example
	}
	text += "\n\nHow well did you remember it?"

	out := tgbotapi.NewMessage(chatID, text)
	out.ReplyMarkup = qualityKeyboard(card.ID)
	b.send(out)
}

func (b *Bot) cmdTest(ctx context.Context, msg *tgbotapi.Message) {
	ctx, _, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "test command", err)
		return
	}

	q, err := b.quizzes.Start(ctx, assessment.StartInput{
		Mode:      domain.TestModeMultipleChoice,
		Direction: domain.DirectionSourceToTarget,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCards) {
			b.reply(msg.Chat.ID, "You need at least two cards to run a quiz. Add more words first.")
			return
		}
		b.replyServiceError(msg.Chat.ID, "test command", err)
		return
	}

	b.sendQuestion(msg.Chat.ID, q)
}

func (b *Bot) cmdCancel(ctx context.Context, msg *tgbotapi.Message) {
	ctx, _, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		b.replyServiceError(msg.Chat.ID, "cancel command", err)
		return
	}

	if err := b.quizzes.Cancel(ctx); err != nil {
		b.replyServiceError(msg.Chat.ID, "cancel command", err)
		return
	}
	b.reply(msg.Chat.ID, "Quiz cancelled.")
}

func (b *Bot) sendQuestion(chatID int64, q *assessment.Question) {
	text := fmt.Sprintf("Question %d of %d\n\n%s", q.Index+1, q.Total, q.Prompt)

	out := tgbotapi.NewMessage(chatID, text)
	if len(q.Options) > 0 {
		var rows [][]tgbotapi.InlineKeyboardButton
		for i, opt := range q.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(opt, "quiz:"+strconv.Itoa(i)),
			))
		}
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	} else {
		text += "\n\nType your answer."
		out.Text = text
	}

	b.send(out)
}

// handleTypedAnswer forwards free text to an active typing quiz.
func (b *Bot) handleTypedAnswer(ctx context.Context, msg *tgbotapi.Message) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	ctx, _, err := b.userCtx(ctx, msg.From.ID)
	if err != nil {
		return
	}

	outcome, err := b.quizzes.SubmitAnswer(ctx, assessment.SubmitInput{Answer: msg.Text})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			b.reply(msg.Chat.ID, "No quiz in progress. Start one with /test.")
			return
		}
		b.replyServiceError(msg.Chat.ID, "submit answer", err)
		return
	}

	b.sendOutcome(ctx, msg.Chat.ID, outcome)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Telegram omits the message on callbacks older than 48 hours; there is
	// no chat to answer in.
	if cb.Message == nil {
		return
	}

	// Ack first so the button stops spinning.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Error("callback ack", "error", err)
	}

	chatID := cb.Message.Chat.ID
	ctx, _, err := b.userCtx(ctx, cb.From.ID)
	if err != nil {
		b.replyServiceError(chatID, "callback", err)
		return
	}

	switch {
	case strings.HasPrefix(cb.Data, "quiz:"):
		b.handleQuizCallback(ctx, chatID, strings.TrimPrefix(cb.Data, "quiz:"))
	case strings.HasPrefix(cb.Data, "grade:"):
		b.handleGradeCallback(ctx, chatID, strings.TrimPrefix(cb.Data, "grade:"))
	}
}

func (b *Bot) handleQuizCallback(ctx context.Context, chatID int64, data string) {
	idx, err := strconv.Atoi(data)
	if err != nil {
		return
	}

	q, err := b.quizzes.CurrentQuestion(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			b.reply(chatID, "That quiz is over. Start a new one with /test.")
			return
		}
		b.replyServiceError(chatID, "quiz callback", err)
		return
	}
	if idx < 0 || idx >= len(q.Options) {
		return
	}

	outcome, err := b.quizzes.SubmitAnswer(ctx, assessment.SubmitInput{Answer: q.Options[idx]})
	if err != nil {
		b.replyServiceError(chatID, "quiz callback", err)
		return
	}

	b.sendOutcome(ctx, chatID, outcome)
}

// handleGradeCallback records a quality grade for a due card, then offers
// the next one.
func (b *Bot) handleGradeCallback(ctx context.Context, chatID int64, data string) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return
	}

	cardID, err := uuid.Parse(parts[0])
	if err != nil {
		return
	}
	quality, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	rep, err := b.reviews.ReviewCard(ctx, review.ReviewCardInput{
		CardID:  cardID,
		Quality: domain.Quality(quality),
	})
	if err != nil {
		b.replyServiceError(chatID, "grade callback", err)
		return
	}

	b.reply(chatID, fmt.Sprintf("%s Next review on %s.",
		qualityLabel(domain.Quality(quality)), rep.NextReview.Format("2006-01-02")))

	due, err := b.reviews.DueCards(ctx, 1)
	if err != nil || len(due) == 0 {
		if err == nil {
			b.reply(chatID, "All caught up!")
		}
		return
	}
	b.sendReviewCard(chatID, due[0].Card)
}

func (b *Bot) sendOutcome(ctx context.Context, chatID int64, outcome *assessment.SubmitOutcome) {
	var sb strings.Builder
	if outcome.Correct {
		sb.WriteString("✅ Correct!")
	} else {
		fmt.Fprintf(&sb, "❌ Wrong. The answer was: %s", outcome.Expected)
	}

	if !outcome.Done {
		b.reply(chatID, sb.String())

		q, err := b.quizzes.CurrentQuestion(ctx)
		if err != nil {
			b.replyServiceError(chatID, "next question", err)
			return
		}
		b.sendQuestion(chatID, q)
		return
	}

	res := outcome.Result
	fmt.Fprintf(&sb, "\n\nQuiz finished: %d/%d (%.1f%%), %s.",
		res.Score, res.Total, res.Accuracy(), res.ResultLevel())
	b.reply(chatID, sb.String())
}

func (b *Bot) replyServiceError(chatID int64, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		b.reply(chatID, "This chat is not linked to an account. Send /start for instructions.")
		return
	}
	b.log.Error(op, "error", err)
	b.reply(chatID, "Something went wrong, please try again later.")
}

func qualityKeyboard(cardID uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	row := func(from, to int) []tgbotapi.InlineKeyboardButton {
		var btns []tgbotapi.InlineKeyboardButton
		for q := from; q <= to; q++ {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(
				qualityLabel(domain.Quality(q)),
				fmt.Sprintf("grade:%s:%d", cardID, q),
			))
		}
		return btns
	}
	return tgbotapi.NewInlineKeyboardMarkup(row(0, 2), row(3, 5))
}

// qualityLabel maps a 0..5 grade to its display tier. Presentation only;
// the services see plain integers.
func qualityLabel(q domain.Quality) string {
	switch q {
	case 0:
		return "😵 0"
	case 1:
		return "😣 1"
	case 2:
		return "😕 2"
	case 3:
		return "🙂 3"
	case 4:
		return "😃 4"
	default:
		return "🤩 5"
	}
}

func levelMarker(level domain.CardLevel) string {
	switch level {
	case domain.CardLevelIntermediate:
		return "🟡"
	case domain.CardLevelAdvanced:
		return "🔴"
	default:
		return "🟢"
	}
}
