package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	trackerdto "screening-service/internal/pkg/dto/tracker"
	"screening-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	trackerClientInstance contracts.TrackerClient
	onceTrackerClient     sync.Once
)

const (
	stageDataElementFields = "programStageDataElements[compulsory,dataElement[id,displayName,valueType,optionSet[id,options[code,name]],translations]]"
	entityAttributeFields  = "programTrackedEntityAttributes[mandatory,trackedEntityAttribute[id,displayName,valueType,optionSet[id,options[code,name]],translations]]"
	organisationUnitFields = "id,displayName,level,path"
)

type trackerClient struct {
	BaseUrl    string
	ApiToken   string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewTrackerClient(baseUrl, apiToken string, requestTimeout time.Duration, logger *zap.Logger) contracts.TrackerClient {
	onceTrackerClient.Do(func() {
		client := &trackerClient{
			BaseUrl:    baseUrl,
			ApiToken:   apiToken,
			HTTPClient: &http.Client{Timeout: requestTimeout},
			Log:        logger,
		}
		trackerClientInstance = client
	})
	return trackerClientInstance
}

func (c *trackerClient) send(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		reader = bytes.NewBuffer(body)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.ApiToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("ApiToken %s", c.ApiToken))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func (c *trackerClient) GetStageDataElements(ctx context.Context, programStageID string) ([]trackerdto.ProgramStageDataElement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.GetStageDataElements called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s%s/%s?fields=%s",
		c.BaseUrl, constvars.TrackerPathProgramStages, programStageID, url.QueryEscape(stageDataElementFields))
	resp, err := c.send(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("trackerClient.GetStageDataElements error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("trackerClient.GetStageDataElements tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		return nil, exceptions.ErrTrackerGetResource(statusErr, constvars.TrackerResourceProgramStage)
	}

	response := new(trackerdto.StageDataElementsResponse)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		c.Log.Error("trackerClient.GetStageDataElements error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTrackerDecodeResponse(err, constvars.TrackerResourceProgramStage)
	}

	c.Log.Info("trackerClient.GetStageDataElements succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMappingCountKey, len(response.ProgramStageDataElements)),
	)
	return response.ProgramStageDataElements, nil
}

func (c *trackerClient) GetEntityAttributes(ctx context.Context, programID string) ([]trackerdto.ProgramTrackedEntityAttribute, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.GetEntityAttributes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s%s/%s?fields=%s",
		c.BaseUrl, constvars.TrackerPathPrograms, programID, url.QueryEscape(entityAttributeFields))
	resp, err := c.send(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("trackerClient.GetEntityAttributes error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("trackerClient.GetEntityAttributes tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		return nil, exceptions.ErrTrackerGetResource(statusErr, constvars.TrackerResourceProgram)
	}

	response := new(trackerdto.EntityAttributesResponse)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		c.Log.Error("trackerClient.GetEntityAttributes error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTrackerDecodeResponse(err, constvars.TrackerResourceProgram)
	}

	c.Log.Info("trackerClient.GetEntityAttributes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMappingCountKey, len(response.ProgramTrackedEntityAttributes)),
	)
	return response.ProgramTrackedEntityAttributes, nil
}

func (c *trackerClient) GetOrganisationUnits(ctx context.Context) ([]trackerdto.OrganisationUnit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.GetOrganisationUnits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s%s?fields=%s&paging=false",
		c.BaseUrl, constvars.TrackerPathOrganisationUnits, url.QueryEscape(organisationUnitFields))
	resp, err := c.send(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("trackerClient.GetOrganisationUnits error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("trackerClient.GetOrganisationUnits tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		return nil, exceptions.ErrTrackerGetResource(statusErr, constvars.TrackerResourceOrganisationUnit)
	}

	response := new(trackerdto.OrganisationUnitsResponse)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		c.Log.Error("trackerClient.GetOrganisationUnits error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTrackerDecodeResponse(err, constvars.TrackerResourceOrganisationUnit)
	}

	c.Log.Info("trackerClient.GetOrganisationUnits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMappingCountKey, len(response.OrganisationUnits)),
	)
	return response.OrganisationUnits, nil
}

func (c *trackerClient) GetEvent(ctx context.Context, eventID string) (*trackerdto.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.GetEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.TrackerPathEvents, eventID)
	resp, err := c.send(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("trackerClient.GetEvent error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		notFoundErr := fmt.Errorf("event %s not found", eventID)
		c.Log.Error("trackerClient.GetEvent event not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, eventID),
		)
		return nil, exceptions.ErrScreeningNotFound(notFoundErr)
	}
	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("trackerClient.GetEvent tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		return nil, exceptions.ErrTrackerGetResource(statusErr, constvars.TrackerResourceEvent)
	}

	event := new(trackerdto.Event)
	err = json.NewDecoder(resp.Body).Decode(event)
	if err != nil {
		c.Log.Error("trackerClient.GetEvent error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTrackerDecodeResponse(err, constvars.TrackerResourceEvent)
	}

	c.Log.Info("trackerClient.GetEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)
	return event, nil
}

func (c *trackerClient) CreateTrackedEntity(ctx context.Context, request *trackerdto.TrackedEntity) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.CreateTrackedEntity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrgUnitKey, request.OrgUnit),
	)

	endpoint := c.BaseUrl + constvars.TrackerPathTrackedEntities
	return c.createResource(ctx, endpoint, request, constvars.TrackerResourceTrackedEntity)
}

func (c *trackerClient) CreateEnrollment(ctx context.Context, request *trackerdto.Enrollment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.CreateEnrollment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.TrackedEntityInstance),
	)

	endpoint := c.BaseUrl + constvars.TrackerPathEnrollments
	return c.createResource(ctx, endpoint, request, constvars.TrackerResourceEnrollment)
}

func (c *trackerClient) CreateEvent(ctx context.Context, request *trackerdto.Event) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.CreateEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.TrackedEntityInstance),
	)

	endpoint := c.BaseUrl + constvars.TrackerPathEvents
	return c.createResource(ctx, endpoint, request, constvars.TrackerResourceEvent)
}

// createResource posts a write payload and extracts the created resource id
// from the import envelope. A missing reference on an otherwise accepted
// import is treated as a failed write.
func (c *trackerClient) createResource(ctx context.Context, endpoint string, request interface{}, resource string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("trackerClient.createResource error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.send(ctx, constvars.MethodPost, endpoint, requestJSON)
	if err != nil {
		c.Log.Error("trackerClient.createResource error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusConflict {
		c.Log.Error("trackerClient.createResource tracker conflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrTrackerConflict(resource)
	}

	importResponse := new(trackerdto.ImportResponse)
	err = json.NewDecoder(resp.Body).Decode(importResponse)
	if err != nil {
		c.Log.Error("trackerClient.createResource error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTrackerDecodeResponse(err, resource)
	}

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		importErr := fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, importResponse.ComposedDescription())
		c.Log.Error("trackerClient.createResource tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(importErr),
		)
		return "", exceptions.ErrTrackerCreateResource(importErr, resource)
	}

	reference := importResponse.FirstReference()
	if reference == "" {
		c.Log.Error("trackerClient.createResource no reference returned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings("conflicts", importResponse.ConflictList()),
		)
		customErr := exceptions.ErrTrackerNoReference(resource, importResponse.ComposedDescription())
		return "", customErr.WithConflicts(importResponse.ConflictList())
	}

	c.Log.Info("trackerClient.createResource succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("reference", reference),
	)
	return reference, nil
}

func (c *trackerClient) UpdateEvent(ctx context.Context, eventID string, request *trackerdto.Event) (int, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.UpdateEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("trackerClient.UpdateEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, 0, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.TrackerPathEvents, eventID)
	resp, err := c.send(ctx, constvars.MethodPut, endpoint, requestJSON)
	if err != nil {
		c.Log.Error("trackerClient.UpdateEvent error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusConflict {
		c.Log.Error("trackerClient.UpdateEvent tracker conflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, eventID),
		)
		return 0, 0, exceptions.ErrTrackerConflict(constvars.TrackerResourceEvent)
	}

	importResponse := new(trackerdto.ImportResponse)
	err = json.NewDecoder(resp.Body).Decode(importResponse)
	if err != nil {
		c.Log.Error("trackerClient.UpdateEvent error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, 0, exceptions.ErrTrackerDecodeResponse(err, constvars.TrackerResourceEvent)
	}

	if resp.StatusCode != constvars.StatusOK {
		importErr := fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, importResponse.ComposedDescription())
		c.Log.Error("trackerClient.UpdateEvent tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(importErr),
		)
		return 0, 0, exceptions.ErrTrackerUpdateResource(importErr, constvars.TrackerResourceEvent)
	}

	updated, ignored := importResponse.Counters()
	c.Log.Info("trackerClient.UpdateEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
		zap.Int("updated", updated),
		zap.Int("ignored", ignored),
	)
	return updated, ignored, nil
}

func (c *trackerClient) UpdateEntityAttributes(ctx context.Context, entityID string, request *trackerdto.TrackedEntity) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("trackerClient.UpdateEntityAttributes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("trackerClient.UpdateEntityAttributes error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.TrackerPathTrackedEntities, entityID)
	resp, err := c.send(ctx, constvars.MethodPut, endpoint, requestJSON)
	if err != nil {
		c.Log.Error("trackerClient.UpdateEntityAttributes error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		c.Log.Error("trackerClient.UpdateEntityAttributes tracker error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		return exceptions.ErrTrackerUpdateResource(statusErr, constvars.TrackerResourceTrackedEntity)
	}

	c.Log.Info("trackerClient.UpdateEntityAttributes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)
	return nil
}
