package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pushkraft/internal/application"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func toyAnalyzer(withToy bool) *application.AnalysisService {
	var scanners []domain.Registration[domain.Scanner]
	if withToy {
		scanners = append(scanners, domain.Always(elementScanner("toy", &domain.TechnologyElement{Name: "toy"})))
	}
	return application.NewAnalysisService(scanners)
}

func TestInterpret_ToyInterpreterChosen(t *testing.T) {
	svc := application.NewInterpretService(toyAnalyzer(true), []domain.Registration[domain.Interpreter]{
		domain.Always(toyInterpreter()),
	})

	interp, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"toy"}, interp.Reason.AvailableInterpreters)
	assert.Equal(t, []string{"toy"}, interp.Reason.ChosenInterpreters)
	require.NotNil(t, interp.DeployGoals)
	assert.Equal(t, []string{"deploy toy"}, interp.DeployGoals.DisplayNames())
	assert.NotEmpty(t, interp.ID)
}

func TestInterpret_ToyInterpreterNotChosen(t *testing.T) {
	svc := application.NewInterpretService(toyAnalyzer(false), []domain.Registration[domain.Interpreter]{
		domain.Always(toyInterpreter()),
	})

	interp, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"toy"}, interp.Reason.AvailableInterpreters)
	assert.Empty(t, interp.Reason.ChosenInterpreters)
	assert.Nil(t, interp.DeployGoals)
}

func TestInterpret_IneligibleInterpreterStillAvailable(t *testing.T) {
	svc := application.NewInterpretService(toyAnalyzer(true), []domain.Registration[domain.Interpreter]{
		domain.When(toyInterpreter(), domain.FullOnly),
	})

	interp, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"toy"}, interp.Reason.AvailableInterpreters)
	assert.Empty(t, interp.Reason.ChosenInterpreters)
}

func TestInterpret_LaterInterpretersSeeEarlierDecisions(t *testing.T) {
	var sawDeploy bool
	watcher := domain.NewInterpreter("watcher", func(_ context.Context, interp *domain.Interpretation, _ *domain.SdmContext) (bool, error) {
		sawDeploy = interp.DeployGoals != nil
		claimed := interp.Claim(domain.SlotDeploy, domain.NewGoals("other", domain.NewGoal("deployOther")))
		return claimed, nil
	})
	svc := application.NewInterpretService(toyAnalyzer(true), []domain.Registration[domain.Interpreter]{
		domain.Always(toyInterpreter()),
		domain.Always(watcher),
	})

	interp, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.NoError(t, err)

	assert.True(t, sawDeploy)
	assert.Equal(t, "toy-deploy", interp.DeployGoals.Name)
	assert.Equal(t, []string{"toy"}, interp.Reason.ChosenInterpreters)
}

func TestInterpret_InterpreterErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	broken := domain.NewInterpreter("broken", func(context.Context, *domain.Interpretation, *domain.SdmContext) (bool, error) {
		return false, boom
	})
	svc := application.NewInterpretService(toyAnalyzer(true), []domain.Registration[domain.Interpreter]{
		domain.Always(broken),
	})

	_, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `interpreter "broken"`)
}

func TestInterpret_ScoresInterpretation(t *testing.T) {
	svc := application.NewInterpretService(toyAnalyzer(true), nil).
		WithScorer(application.NewScoreService([]domain.Registration[domain.Scorer]{
			domain.Always(fixedScorer("delivery", 3)),
		}))

	interp, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.FiveStar(3), interp.Scores["delivery"].Score)
}

func TestInterpret_NoAnalyzer(t *testing.T) {
	svc := application.NewInterpretService(nil, nil)
	_, err := svc.Interpret(context.Background(), memProject(t), nil, domain.AnalysisOptions{})
	assert.Error(t, err)
}
