/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package clientsessionstore persists authorization sessions in mongo. The
// lookup keys the orchestrator addresses a session by (nonce, state, code,
// cNonce, requestID) carry unique sparse indexes, so one value can never match
// two live sessions.
package clientsessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/walletgate/vc-auth/pkg/service/oidc4vc"
	"github.com/walletgate/vc-auth/pkg/storage/mongodb"
)

const collectionName = "clientsession"

type mongoDocument struct {
	ID       string    `bson:"_id"`
	ExpireAt time.Time `bson:"expireAt"`

	SessionID            string `bson:"sessionId,omitempty"`
	Nonce                string `bson:"nonce,omitempty"`
	State                string `bson:"state,omitempty"`
	ClientID             string `bson:"clientId,omitempty"`
	RedirectURI          string `bson:"redirectUri,omitempty"`
	CodeChallenge        string `bson:"codeChallenge,omitempty"`
	AuthorizationDetails string `bson:"authorizationDetails,omitempty"`
	Request              string `bson:"request,omitempty"`
	PresentationDefinition []byte `bson:"presentationDefinition,omitempty"`
	RequestID            string `bson:"requestId,omitempty"`
	ValidationRule       []byte `bson:"validationRule,omitempty"`
	Code                 string `bson:"code,omitempty"`
	CNonce               string `bson:"cNonce,omitempty"`
	CNonceExpiresIn      int64  `bson:"cNonceExpiresIn,omitempty"`
	UserInfo             bson.M `bson:"userInfo,omitempty"`
}

// Store stores client sessions in mongo.
type Store struct {
	mongoClient *mongodb.Client
	defaultTTL  time.Duration
}

// New creates Store and ensures its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client, ttl time.Duration) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
		defaultTTL:  ttl,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: map[string]interface{}{"expireAt": 1},
			// ttl index, mongo evicts expired documents in the background
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	for _, key := range []string{"nonce", "state", "code", "cNonce", "requestId"} {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    map[string]interface{}{key: -1},
			Options: options.Index().SetUnique(true).SetSparse(true),
		})
	}

	if _, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	return nil
}

// Save upserts the session keyed by its id.
func (s *Store) Save(ctx context.Context, session *oidc4vc.ClientSession) error {
	doc, err := mapSessionToMongoDocument(session)
	if err != nil {
		return err
	}

	doc.ExpireAt = time.Now().UTC().Add(s.defaultTTL)

	collection := s.mongoClient.Database().Collection(collectionName)

	_, err = collection.ReplaceOne(ctx,
		bson.M{"_id": session.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save client session: %w", err)
	}

	return nil
}

func (s *Store) FindByNonce(ctx context.Context, nonce string) ([]*oidc4vc.ClientSession, error) {
	return s.find(ctx, bson.M{"nonce": nonce})
}

func (s *Store) FindByState(ctx context.Context, state string) ([]*oidc4vc.ClientSession, error) {
	return s.find(ctx, bson.M{"state": state})
}

func (s *Store) FindByCode(ctx context.Context, code string) ([]*oidc4vc.ClientSession, error) {
	return s.find(ctx, bson.M{"code": code})
}

func (s *Store) FindByCNonce(ctx context.Context, cNonce string) ([]*oidc4vc.ClientSession, error) {
	return s.find(ctx, bson.M{"cNonce": cNonce})
}

func (s *Store) FindByRequestID(ctx context.Context, requestID string) ([]*oidc4vc.ClientSession, error) {
	return s.find(ctx, bson.M{"requestId": requestID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]*oidc4vc.ClientSession, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find client sessions: %w", err)
	}

	var docs []mongoDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode client sessions: %w", err)
	}

	now := time.Now().UTC()

	var sessions []*oidc4vc.ClientSession

	for i := range docs {
		// the ttl monitor runs once a minute, expired documents can still match
		if docs[i].ExpireAt.Before(now) {
			continue
		}

		session, mapErr := mapDocumentToSession(&docs[i])
		if mapErr != nil {
			return nil, mapErr
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

func mapSessionToMongoDocument(session *oidc4vc.ClientSession) (*mongoDocument, error) {
	var userInfo bson.M

	if session.UserInfo != nil {
		raw, err := json.Marshal(session.UserInfo)
		if err != nil {
			return nil, fmt.Errorf("marshal userInfo: %w", err)
		}

		if err = json.Unmarshal(raw, &userInfo); err != nil {
			return nil, fmt.Errorf("unmarshal userInfo: %w", err)
		}
	}

	return &mongoDocument{
		ID:                     session.ID,
		SessionID:              session.SessionID,
		Nonce:                  session.Nonce,
		State:                  session.State,
		ClientID:               session.ClientID,
		RedirectURI:            session.RedirectURI,
		CodeChallenge:          session.CodeChallenge,
		AuthorizationDetails:   session.AuthorizationDetails,
		Request:                session.Request,
		PresentationDefinition: session.PresentationDefinition,
		RequestID:              session.RequestID,
		ValidationRule:         session.ValidationRule,
		Code:                   session.Code,
		CNonce:                 session.CNonce,
		CNonceExpiresIn:        session.CNonceExpiresIn,
		UserInfo:               userInfo,
	}, nil
}

func mapDocumentToSession(doc *mongoDocument) (*oidc4vc.ClientSession, error) {
	var userInfo map[string]interface{}

	if doc.UserInfo != nil {
		raw, err := json.Marshal(doc.UserInfo)
		if err != nil {
			return nil, fmt.Errorf("marshal userInfo document: %w", err)
		}

		if err = json.Unmarshal(raw, &userInfo); err != nil {
			return nil, fmt.Errorf("unmarshal userInfo document: %w", err)
		}
	}

	return &oidc4vc.ClientSession{
		ID:                     doc.ID,
		SessionID:              doc.SessionID,
		Nonce:                  doc.Nonce,
		State:                  doc.State,
		ClientID:               doc.ClientID,
		RedirectURI:            doc.RedirectURI,
		CodeChallenge:          doc.CodeChallenge,
		AuthorizationDetails:   doc.AuthorizationDetails,
		Request:                doc.Request,
		PresentationDefinition: doc.PresentationDefinition,
		RequestID:              doc.RequestID,
		ValidationRule:         doc.ValidationRule,
		Code:                   doc.Code,
		CNonce:                 doc.CNonce,
		CNonceExpiresIn:        doc.CNonceExpiresIn,
		UserInfo:               userInfo,
	}, nil
}
