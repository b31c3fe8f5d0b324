package scoring

import (
	"math"

	"github.com/rocketscienceinc/goban-backend/internal/board"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

const DefaultKomi = 7.5

// Calculator scores finished positions with a fixed komi for white.
type Calculator struct {
	komi float64
}

func NewCalculator(komi float64) *Calculator {
	return &Calculator{komi: komi}
}

func (that *Calculator) Komi() float64 {
	return that.komi
}

// Score - black gets territory plus captures, white gets territory plus captures plus komi.
// Black wins only with a strictly greater score, so an exact tie goes to white.
func (that *Calculator) Score(b *board.Board, capturedByBlack, capturedByWhite int) entity.GameResult {
	territory := CalculateTerritory(b)

	blackScore := float64(territory.Of(entity.Black) + capturedByBlack)
	whiteScore := float64(territory.Of(entity.White)+capturedByWhite) + that.komi

	winner := entity.White
	if blackScore > whiteScore {
		winner = entity.Black
	}

	return entity.GameResult{
		BlackScore: blackScore,
		WhiteScore: whiteScore,
		Winner:     winner,
		Margin:     math.Abs(blackScore - whiteScore),
		Reason:     entity.ReasonScore,
	}
}
